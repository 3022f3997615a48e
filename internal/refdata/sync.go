package refdata

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	"gorm.io/gorm"
)

// Syncer merges the external risk and user catalogs into the dimension
// tables. Each catalog is applied as one transactional batch with
// create-or-update semantics keyed by the entity's natural key, so re-running
// with the same files leaves the tables unchanged.
type Syncer struct {
	db     *gorm.DB
	cfg    internal.RefDataConfig
	logger *slog.Logger
}

func NewSyncer(db *gorm.DB, cfg internal.RefDataConfig, logger *slog.Logger) *Syncer {
	return &Syncer{db: db, cfg: cfg, logger: logger}
}

// Run loads both catalogs. Failures are logged and returned for the caller to
// log again if it wants; callers must not let a sync failure abort startup or
// migration.
func (s *Syncer) Run() error {
	var errs []error

	if err := s.syncRiscos(); err != nil {
		s.logger.Error("risk catalog sync failed, batch rolled back", "error", err)
		errs = append(errs, err)
	}
	if err := s.syncUsers(); err != nil {
		s.logger.Error("user catalog sync failed, batch rolled back", "error", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Syncer) syncRiscos() error {
	path := filepath.Join(s.cfg.Dir, s.cfg.RiskFile)

	var synced, skipped int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for record := range ReadRecords(path, s.logger) {
			codigo := record["codigo"]
			subcategoria := record["subcategoria"]
			descricao := record["descricao"]
			categoria := record["categoria"]

			if codigo == "" || subcategoria == "" || descricao == "" {
				skipped++
				continue
			}

			var existing dimDatamodel.Risco
			result := tx.Where(
				"codigo = ? AND subcategoria = ? AND descricao = ?",
				codigo, subcategoria, descricao,
			).First(&existing)

			switch {
			case result.Error == nil:
				if existing.Categoria != categoria {
					existing.Categoria = categoria
					if err := tx.Save(&existing).Error; err != nil {
						return err
					}
				}
			case errors.Is(result.Error, gorm.ErrRecordNotFound):
				risco := dimDatamodel.Risco{
					Codigo:       codigo,
					Categoria:    categoria,
					Subcategoria: subcategoria,
					Descricao:    descricao,
				}
				if err := tx.Create(&risco).Error; err != nil {
					return err
				}
			default:
				return result.Error
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("risk catalog synced", "path", path, "synced", synced, "skipped", skipped)
	return nil
}

func (s *Syncer) syncUsers() error {
	path := filepath.Join(s.cfg.Dir, s.cfg.UserFile)

	var synced, skipped int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for record := range ReadRecords(path, s.logger) {
			matricula := record["matricula"]
			nome := record["nome"]

			if matricula == "" || nome == "" {
				skipped++
				continue
			}

			var uoCodigo *string
			if code := record["uo"]; code != "" {
				uo := dimDatamodel.UO{Codigo: code}
				if err := tx.Where(dimDatamodel.UO{Codigo: code}).
					Attrs(dimDatamodel.UO{Descricao: code}).
					FirstOrCreate(&uo).Error; err != nil {
					return err
				}
				uoCodigo = &uo.Codigo
			}

			user := dimDatamodel.User{
				Matricula: matricula,
				Nome:      nome,
				Email:     optional(record["email"]),
				Funcao:    optional(record["cargo"]),
				UOCodigo:  uoCodigo,
			}

			var existing dimDatamodel.User
			result := tx.Where("matricula = ?", matricula).First(&existing)
			switch {
			case result.Error == nil:
				if err := tx.Save(&user).Error; err != nil {
					return err
				}
			case errors.Is(result.Error, gorm.ErrRecordNotFound):
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
			default:
				return result.Error
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user catalog synced", "path", path, "synced", synced, "skipped", skipped)
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
