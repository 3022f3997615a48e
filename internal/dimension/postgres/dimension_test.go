package postgres

import (
	"log/slog"
	"os"
	"testing"

	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	"github.com/lmoreira/requerimento-service/internal/dimension"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDimensionPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dimension Repository Suite")
}

func openTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	Expect(err).NotTo(HaveOccurred())
	Expect(db.Exec("PRAGMA foreign_keys = ON").Error).NotTo(HaveOccurred())
	Expect(db.AutoMigrate(
		&dimDatamodel.UO{},
		&dimDatamodel.User{},
		&dimDatamodel.Cargo{},
		&dimDatamodel.LocalAtividade{},
		&dimDatamodel.TipoRequerimento{},
		&dimDatamodel.RegimeTrabalho{},
		&dimDatamodel.Risco{},
	)).NotTo(HaveOccurred())
	return db
}

func strptr(s string) *string { return &s }

var _ = Describe("UserRepository", func() {
	var (
		db   *gorm.DB
		repo dimension.UserRepositoryAPI
	)

	BeforeEach(func() {
		db = openTestDB()
		repo = NewUserRepository(db)
	})

	It("creates and reads back a user", func() {
		user := &dimDatamodel.User{Matricula: "100", Nome: "Ana", Email: strptr("ana@mail.com")}
		Expect(repo.Create(user)).NotTo(HaveOccurred())

		got, err := repo.GetByMatricula("100")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Nome).To(Equal("Ana"))
		Expect(*got.Email).To(Equal("ana@mail.com"))
	})

	It("rejects a duplicate matricula", func() {
		Expect(repo.Create(&dimDatamodel.User{Matricula: "100", Nome: "Ana"})).NotTo(HaveOccurred())

		err := repo.Create(&dimDatamodel.User{Matricula: "100", Nome: "Outra"})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateKey))
	})

	It("clears optional columns on full update", func() {
		Expect(repo.Create(&dimDatamodel.User{Matricula: "100", Nome: "Ana", Email: strptr("ana@mail.com")})).NotTo(HaveOccurred())

		Expect(repo.Update(&dimDatamodel.User{Matricula: "100", Nome: "Ana Souza"})).NotTo(HaveOccurred())

		got, err := repo.GetByMatricula("100")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Nome).To(Equal("Ana Souza"))
		Expect(got.Email).To(BeNil())
	})

	It("returns not found for an unknown matricula", func() {
		_, err := repo.GetByMatricula("999")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
	})
})

var _ = Describe("LookupRepository", func() {
	var (
		db   *gorm.DB
		repo dimension.LookupRepositoryAPI
	)

	BeforeEach(func() {
		db = openTestDB()
		repo = NewUORepository(db)
	})

	It("creates, updates and deletes rows in its table", func() {
		Expect(repo.Create(&dimension.Lookup{Codigo: "UO1", Descricao: "Unidade 1"})).NotTo(HaveOccurred())
		Expect(repo.Update(&dimension.Lookup{Codigo: "UO1", Descricao: "Unidade Um"})).NotTo(HaveOccurred())

		got, err := repo.GetByCodigo("UO1")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Descricao).To(Equal("Unidade Um"))

		Expect(repo.Delete("UO1")).NotTo(HaveOccurred())
		_, err = repo.GetByCodigo("UO1")
		Expect(err).To(HaveOccurred())
	})

	It("keeps the code/description tables apart", func() {
		locais := NewLocalAtividadeRepository(db)
		Expect(repo.Create(&dimension.Lookup{Codigo: "X", Descricao: "uo row"})).NotTo(HaveOccurred())

		rows, err := locais.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
	})

	It("refuses to delete a uo still referenced by a user", func() {
		Expect(repo.Create(&dimension.Lookup{Codigo: "UO1", Descricao: "Unidade 1"})).NotTo(HaveOccurred())

		users := NewUserRepository(db)
		Expect(users.Create(&dimDatamodel.User{Matricula: "100", Nome: "Ana", UOCodigo: strptr("UO1")})).NotTo(HaveOccurred())

		err := repo.Delete("UO1")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeDeleteRestricted))

		got, err := repo.GetByCodigo("UO1")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Descricao).To(Equal("Unidade 1"))
	})
})

var _ = Describe("UserService over the store", func() {
	It("maps an unknown uo_codigo on create to a field validation error", func() {
		db := openTestDB()
		service := dimension.NewUserService(
			NewUserRepository(db),
			NewUORepository(db),
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		)

		uo := "NOPE"
		_, err := service.Create(dimension.CreateUserDTO{Matricula: "100", Nome: "Ana", UOCodigo: &uo})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		Expect(appErr.Code).NotTo(Equal(internal.ErrCodeDeleteRestricted))
		details, ok := appErr.Details.(internal.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(details.Errors[0].Field).To(Equal("uo_codigo"))
	})
})

var _ = Describe("RiscoRepository", func() {
	var (
		db   *gorm.DB
		repo dimension.RiscoRepositoryAPI
	)

	BeforeEach(func() {
		db = openTestDB()
		repo = NewRiscoRepository(db)
	})

	It("assigns surrogate ids on creation", func() {
		risco := &dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"}
		Expect(repo.Create(risco)).NotTo(HaveOccurred())
		Expect(risco.ID).NotTo(BeZero())
	})

	It("rejects a duplicate natural key triple", func() {
		Expect(repo.Create(&dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"})).NotTo(HaveOccurred())

		err := repo.Create(&dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateKey))
	})

	It("allows rows sharing codigo and subcategoria with distinct descricao", func() {
		Expect(repo.Create(&dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"})).NotTo(HaveOccurred())
		Expect(repo.Create(&dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Vapores"})).NotTo(HaveOccurred())

		riscos, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(riscos).To(HaveLen(2))
	})

	It("orders by codigo, subcategoria and descricao", func() {
		Expect(repo.Create(&dimDatamodel.Risco{Codigo: "R02", Subcategoria: "Fisico", Descricao: "Ruido"})).NotTo(HaveOccurred())
		Expect(repo.Create(&dimDatamodel.Risco{Codigo: "R01", Subcategoria: "Quimico", Descricao: "Poeira"})).NotTo(HaveOccurred())

		riscos, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(riscos[0].Codigo).To(Equal("R01"))
		Expect(riscos[1].Codigo).To(Equal("R02"))
	})
})

var _ = Describe("CargoRepository", func() {
	It("updates a cargo in place", func() {
		db := openTestDB()
		repo := NewCargoRepository(db)

		cargo := &dimDatamodel.Cargo{Nome: "Analista"}
		Expect(repo.Create(cargo)).NotTo(HaveOccurred())

		cargo.Nome = "Analista Senior"
		Expect(repo.Update(cargo)).NotTo(HaveOccurred())

		got, err := repo.GetByID(cargo.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Nome).To(Equal("Analista Senior"))
	})
})
