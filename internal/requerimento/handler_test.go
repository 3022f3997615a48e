package requerimento_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	reqDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/requerimento"
	"github.com/lmoreira/requerimento-service/internal/requerimento"
	reqPostgres "github.com/lmoreira/requerimento-service/internal/requerimento/postgres"
	"github.com/lmoreira/requerimento-service/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Requerimento Handler Integration", func() {
	var (
		db     *gorm.DB
		router chi.Router
		riscos []dimDatamodel.Risco
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Exec("PRAGMA foreign_keys = ON").Error).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(
			&dimDatamodel.UO{},
			&dimDatamodel.User{},
			&dimDatamodel.LocalAtividade{},
			&dimDatamodel.TipoRequerimento{},
			&dimDatamodel.RegimeTrabalho{},
			&dimDatamodel.Risco{},
			&reqDatamodel.Requerimento{},
		)).NotTo(HaveOccurred())

		Expect(db.Create(&dimDatamodel.UO{Codigo: "UO1", Descricao: "Unidade 1"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&dimDatamodel.User{Matricula: "100", Nome: "Ana"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&dimDatamodel.User{Matricula: "200", Nome: "Bruno"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&dimDatamodel.RegimeTrabalho{Codigo: "RT1", Descricao: "Turno"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&dimDatamodel.LocalAtividade{Codigo: "LA1", Descricao: "Campo"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&dimDatamodel.TipoRequerimento{Codigo: "TR1", Descricao: "Adicional"}).Error).NotTo(HaveOccurred())
		riscos = []dimDatamodel.Risco{
			{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"},
			{Codigo: "R02", Subcategoria: "Fisico", Descricao: "Ruido"},
		}
		for i := range riscos {
			Expect(db.Create(&riscos[i]).Error).NotTo(HaveOccurred())
		}

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := requerimento.NewService(
			reqPostgres.NewRequerimentoRepository(db),
			reqPostgres.NewDimensionResolver(db),
			slogger,
		)
		handler := requerimento.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Route("/requerimentos", handler.RegisterRoutes)
	})

	createPayload := func() map[string]interface{} {
		return map[string]interface{}{
			"status":                   "rascunho",
			"atividades_executadas":    "inspecao de campo",
			"requerente_matricula":     "100",
			"funcionario_matricula":    "200",
			"uo_codigo":                "UO1",
			"regime_trabalho_codigo":   "RT1",
			"local_atividade_codigo":   "LA1",
			"tipo_requerimento_codigo": "TR1",
			"riscos_ids":               []int64{riscos[0].ID},
		}
	}

	doJSON := func(method, path string, payload interface{}) *httptest.ResponseRecorder {
		var body bytes.Buffer
		if payload != nil {
			Expect(json.NewEncoder(&body).Encode(payload)).NotTo(HaveOccurred())
		}
		req := httptest.NewRequest(method, path, &body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("creates a requerimento and returns the nested view", func() {
		w := doJSON(http.MethodPost, "/requerimentos", createPayload())
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&created)).NotTo(HaveOccurred())
		Expect(created.ReqNum).NotTo(BeZero())
		Expect(created.DocUUID).NotTo(BeEmpty())
		Expect(created.Requerente.Nome).To(Equal("Ana"))
		Expect(created.UO.Descricao).To(Equal("Unidade 1"))
		Expect(created.Riscos).To(HaveLen(1))
		Expect(created.Riscos[0].Descricao).To(Equal("Poeira"))
	})

	It("rejects an unresolvable dimension key naming the field", func() {
		payload := createPayload()
		payload["uo_codigo"] = "MISSING"

		w := doJSON(http.MethodPost, "/requerimentos", payload)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("uo_codigo"))
		Expect(w.Body.String()).To(ContainSubstring("REFERENTIAL_VIOLATION"))
	})

	It("rejects a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/requerimentos", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists requerimentos", func() {
		Expect(doJSON(http.MethodPost, "/requerimentos", createPayload()).Code).To(Equal(http.StatusCreated))

		w := doJSON(http.MethodGet, "/requerimentos", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var rows []requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&rows)).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
	})

	It("returns 404 for an unknown req_num", func() {
		w := doJSON(http.MethodGet, "/requerimentos/999", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("patches only the supplied fields", func() {
		w := doJSON(http.MethodPost, "/requerimentos", createPayload())
		var created requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&created)).NotTo(HaveOccurred())

		patch := map[string]interface{}{"status": "aprovado"}
		w = doJSON(http.MethodPatch, fmt.Sprintf("/requerimentos/%d", created.ReqNum), patch)
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&updated)).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal("aprovado"))
		Expect(updated.Riscos).To(HaveLen(1))
		Expect(updated.DocUUID).To(Equal(created.DocUUID))
	})

	It("replaces the risk set through an explicit empty list", func() {
		w := doJSON(http.MethodPost, "/requerimentos", createPayload())
		var created requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&created)).NotTo(HaveOccurred())

		patch := map[string]interface{}{"riscos_ids": []int64{}}
		w = doJSON(http.MethodPatch, fmt.Sprintf("/requerimentos/%d", created.ReqNum), patch)
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&updated)).NotTo(HaveOccurred())
		Expect(updated.Riscos).To(BeEmpty())
	})

	It("deletes a requerimento", func() {
		w := doJSON(http.MethodPost, "/requerimentos", createPayload())
		var created requerimento.Requerimento
		Expect(json.NewDecoder(w.Body).Decode(&created)).NotTo(HaveOccurred())

		w = doJSON(http.MethodDelete, fmt.Sprintf("/requerimentos/%d", created.ReqNum), nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = doJSON(http.MethodGet, fmt.Sprintf("/requerimentos/%d", created.ReqNum), nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
