package refdata_test

import (
	"os"
	"path/filepath"

	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	"github.com/lmoreira/requerimento-service/internal/refdata"
	"github.com/lmoreira/requerimento-service/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var _ = Describe("Syncer", func() {
	var (
		db  *gorm.DB
		dir string
		cfg internal.RefDataConfig
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&dimDatamodel.UO{}, &dimDatamodel.User{}, &dimDatamodel.Risco{})
		Expect(err).NotTo(HaveOccurred())

		dir = GinkgoT().TempDir()
		cfg = internal.RefDataConfig{Dir: dir, RiskFile: "dimRisk.csv", UserFile: "dimUser.csv"}
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	writeCatalog := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)).To(Succeed())
	}

	newSyncer := func() *refdata.Syncer {
		return refdata.NewSyncer(db, cfg, logger.L())
	}

	Describe("risk catalog", func() {
		It("inserts rows keyed by the natural-key triple", func() {
			writeCatalog("dimRisk.csv",
				"codigo;categoria;subcategoria;descricao\nR1;Fisico;Ruido;Exposicao continua\nR2;Quimico;Poeira;Inalacao\n")

			Expect(newSyncer().Run()).To(Succeed())

			var count int64
			db.Model(&dimDatamodel.Risco{}).Count(&count)
			Expect(count).To(Equal(int64(2)))
		})

		It("skips records missing a required field", func() {
			writeCatalog("dimRisk.csv",
				"codigo;categoria;subcategoria;descricao\nR1;Fisico;;Sem subcategoria\n;Fisico;Ruido;Sem codigo\nR2;Quimico;Poeira;Valido\n")

			Expect(newSyncer().Run()).To(Succeed())

			var count int64
			db.Model(&dimDatamodel.Risco{}).Count(&count)
			Expect(count).To(Equal(int64(1)))
		})

		It("overwrites categoria on a second run without duplicating the row", func() {
			writeCatalog("dimRisk.csv",
				"codigo;categoria;subcategoria;descricao\nR1;Fisico;Ruido;Exposicao continua\n")
			Expect(newSyncer().Run()).To(Succeed())

			writeCatalog("dimRisk.csv",
				"codigo;categoria;subcategoria;descricao\nR1;Ocupacional;Ruido;Exposicao continua\n")
			Expect(newSyncer().Run()).To(Succeed())

			var riscos []dimDatamodel.Risco
			db.Where("codigo = ?", "R1").Find(&riscos)
			Expect(riscos).To(HaveLen(1))
			Expect(riscos[0].Categoria).To(Equal("Ocupacional"))
		})

		It("is idempotent for identical input", func() {
			writeCatalog("dimRisk.csv",
				"codigo;categoria;subcategoria;descricao\nR1;Fisico;Ruido;Exposicao continua\n")

			Expect(newSyncer().Run()).To(Succeed())
			Expect(newSyncer().Run()).To(Succeed())

			var count int64
			db.Model(&dimDatamodel.Risco{}).Count(&count)
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("user catalog", func() {
		It("auto-creates an unknown organizational unit with the code as description", func() {
			writeCatalog("dimUser.csv", "matricula;nome;email;cargo;uo\n123;Ana;;;XYZ\n")

			Expect(newSyncer().Run()).To(Succeed())

			var user dimDatamodel.User
			Expect(db.Where("matricula = ?", "123").First(&user).Error).To(Succeed())
			Expect(user.UOCodigo).NotTo(BeNil())
			Expect(*user.UOCodigo).To(Equal("XYZ"))

			var uo dimDatamodel.UO
			Expect(db.Where("codigo = ?", "XYZ").First(&uo).Error).To(Succeed())
			Expect(uo.Descricao).To(Equal("XYZ"))
		})

		It("leaves the unit reference unset for an empty uo code", func() {
			writeCatalog("dimUser.csv", "matricula;nome;email;cargo;uo\n123;Ana;ana@mail.com;Engenheira;\n")

			Expect(newSyncer().Run()).To(Succeed())

			var user dimDatamodel.User
			Expect(db.Where("matricula = ?", "123").First(&user).Error).To(Succeed())
			Expect(user.UOCodigo).To(BeNil())
			Expect(user.Email).NotTo(BeNil())
			Expect(*user.Funcao).To(Equal("Engenheira"))
		})

		It("overwrites user attributes on every run", func() {
			writeCatalog("dimUser.csv", "matricula;nome;email;cargo;uo\n123;Ana;ana@mail.com;;\n")
			Expect(newSyncer().Run()).To(Succeed())

			writeCatalog("dimUser.csv", "matricula;nome;email;cargo;uo\n123;Ana Souza;;;\n")
			Expect(newSyncer().Run()).To(Succeed())

			var user dimDatamodel.User
			Expect(db.Where("matricula = ?", "123").First(&user).Error).To(Succeed())
			Expect(user.Nome).To(Equal("Ana Souza"))
			Expect(user.Email).To(BeNil())
		})

		It("skips records without matricula or nome", func() {
			writeCatalog("dimUser.csv", "matricula;nome;email;cargo;uo\n;Ana;;;\n456;;;;\n789;Carla;;;\n")

			Expect(newSyncer().Run()).To(Succeed())

			var count int64
			db.Model(&dimDatamodel.User{}).Count(&count)
			Expect(count).To(Equal(int64(1)))
		})
	})

	It("completes without touching rows when both files are absent", func() {
		Expect(newSyncer().Run()).To(Succeed())

		var users, riscos int64
		db.Model(&dimDatamodel.User{}).Count(&users)
		db.Model(&dimDatamodel.Risco{}).Count(&riscos)
		Expect(users).To(BeZero())
		Expect(riscos).To(BeZero())
	})
})
