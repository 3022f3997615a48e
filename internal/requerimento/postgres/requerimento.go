package postgres

import (
	"errors"

	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	reqDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/requerimento"
	dimPostgres "github.com/lmoreira/requerimento-service/internal/dimension/postgres"
	"github.com/lmoreira/requerimento-service/internal/requerimento"
	"gorm.io/gorm"
)

// RequerimentoRepository persists fact rows with GORM. Reads preload every
// dimension and the risk set so the service can build the nested read view in
// one round trip.
type RequerimentoRepository struct {
	db *gorm.DB
}

func NewRequerimentoRepository(db *gorm.DB) requerimento.RepositoryAPI {
	return &RequerimentoRepository{db: db}
}

func (r *RequerimentoRepository) withPreloads() *gorm.DB {
	return r.db.
		Preload("Requerente").
		Preload("Funcionario").
		Preload("UO").
		Preload("RegimeTrabalho").
		Preload("LocalAtividade").
		Preload("TipoRequerimento").
		Preload("Riscos")
}

func (r *RequerimentoRepository) GetAll() ([]*reqDatamodel.Requerimento, error) {
	var rows []*reqDatamodel.Requerimento
	err := r.withPreloads().Order("data_criacao DESC").Find(&rows).Error
	return rows, dimPostgres.TranslateError(err, "requerimento")
}

func (r *RequerimentoRepository) GetByID(reqNum int64) (*reqDatamodel.Requerimento, error) {
	var row reqDatamodel.Requerimento
	err := r.withPreloads().Where("req_num = ?", reqNum).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("requerimento not found", internal.ErrCodeRequerimentoNotFound).WithCause(err)
		}
		return nil, dimPostgres.TranslateError(err, "requerimento")
	}
	return &row, nil
}

// Create inserts the fact row and its risk associations. GORM wraps the
// multi-table insert in one transaction; the dimension associations are never
// upserted from here (FullSaveAssociations stays off), only referenced.
func (r *RequerimentoRepository) Create(row *reqDatamodel.Requerimento) error {
	err := r.db.Omit(
		"Requerente", "Funcionario", "UO",
		"RegimeTrabalho", "LocalAtividade", "TipoRequerimento",
		"Riscos.*",
	).Create(row).Error
	return dimPostgres.TranslateError(err, "requerimento")
}

func (r *RequerimentoRepository) Update(reqNum int64, updates map[string]interface{}, riscos []dimDatamodel.Risco) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&reqDatamodel.Requerimento{}).
				Where("req_num = ?", reqNum).
				Updates(updates)
			if result.Error != nil {
				return result.Error
			}
		}

		if riscos != nil {
			row := reqDatamodel.Requerimento{ReqNum: reqNum}
			if err := tx.Model(&row).Association("Riscos").Replace(toInterfaces(riscos)...); err != nil {
				return err
			}
		}
		return nil
	})
	return dimPostgres.TranslateError(err, "requerimento")
}

func (r *RequerimentoRepository) Delete(reqNum int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		row := reqDatamodel.Requerimento{ReqNum: reqNum}
		if err := tx.Model(&row).Association("Riscos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&reqDatamodel.Requerimento{}, "req_num = ?", reqNum).Error
	})
	return dimPostgres.TranslateError(err, "requerimento")
}

func toInterfaces(riscos []dimDatamodel.Risco) []interface{} {
	out := make([]interface{}, len(riscos))
	for i := range riscos {
		out[i] = &riscos[i]
	}
	return out
}

// DimensionResolver reads dimension rows by natural key for the write-path
// resolve step.
type DimensionResolver struct {
	db *gorm.DB
}

func NewDimensionResolver(db *gorm.DB) requerimento.DimensionResolverAPI {
	return &DimensionResolver{db: db}
}

func (r *DimensionResolver) User(matricula string) (*dimDatamodel.User, error) {
	var user dimDatamodel.User
	if err := r.db.Where("matricula = ?", matricula).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DimensionResolver) UO(codigo string) (*dimDatamodel.UO, error) {
	var uo dimDatamodel.UO
	if err := r.db.Where("codigo = ?", codigo).First(&uo).Error; err != nil {
		return nil, err
	}
	return &uo, nil
}

func (r *DimensionResolver) RegimeTrabalho(codigo string) (*dimDatamodel.RegimeTrabalho, error) {
	var regime dimDatamodel.RegimeTrabalho
	if err := r.db.Where("codigo = ?", codigo).First(&regime).Error; err != nil {
		return nil, err
	}
	return &regime, nil
}

func (r *DimensionResolver) LocalAtividade(codigo string) (*dimDatamodel.LocalAtividade, error) {
	var local dimDatamodel.LocalAtividade
	if err := r.db.Where("codigo = ?", codigo).First(&local).Error; err != nil {
		return nil, err
	}
	return &local, nil
}

func (r *DimensionResolver) TipoRequerimento(codigo string) (*dimDatamodel.TipoRequerimento, error) {
	var tipo dimDatamodel.TipoRequerimento
	if err := r.db.Where("codigo = ?", codigo).First(&tipo).Error; err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *DimensionResolver) Riscos(ids []int64) ([]dimDatamodel.Risco, error) {
	var riscos []dimDatamodel.Risco
	if err := r.db.Where("id IN ?", ids).Find(&riscos).Error; err != nil {
		return nil, err
	}
	return riscos, nil
}
