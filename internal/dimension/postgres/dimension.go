package postgres

import (
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	"github.com/lmoreira/requerimento-service/internal/dimension"
	"gorm.io/gorm"
)

// ---------------------------------------------------------------- users

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) dimension.UserRepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*dimDatamodel.User, error) {
	var users []*dimDatamodel.User
	err := r.db.Order("nome ASC").Find(&users).Error
	return users, TranslateError(err, "user")
}

func (r *UserRepository) GetByMatricula(matricula string) (*dimDatamodel.User, error) {
	var user dimDatamodel.User
	if err := r.db.Where("matricula = ?", matricula).First(&user).Error; err != nil {
		return nil, TranslateError(err, "user")
	}
	return &user, nil
}

func (r *UserRepository) Create(user *dimDatamodel.User) error {
	return TranslateError(r.db.Create(user).Error, "user")
}

func (r *UserRepository) Update(user *dimDatamodel.User) error {
	// Full update writes every column, including NULLs for the optional
	// fields.
	err := r.db.Model(&dimDatamodel.User{Matricula: user.Matricula}).
		Select("nome", "email", "funcao", "uo_codigo").
		Updates(map[string]interface{}{
			"nome":      user.Nome,
			"email":     user.Email,
			"funcao":    user.Funcao,
			"uo_codigo": user.UOCodigo,
		}).Error
	return TranslateError(err, "user")
}

func (r *UserRepository) Delete(matricula string) error {
	err := r.db.Where("matricula = ?", matricula).Delete(&dimDatamodel.User{}).Error
	return TranslateError(err, "user")
}

// ---------------------------------------------------------------- lookups

// LookupRepository serves one of the code/description tables; the table name
// is fixed at construction.
type LookupRepository struct {
	db       *gorm.DB
	table    string
	resource string
}

func NewUORepository(db *gorm.DB) dimension.LookupRepositoryAPI {
	return &LookupRepository{db: db, table: "dim_uo", resource: "uo"}
}

func NewLocalAtividadeRepository(db *gorm.DB) dimension.LookupRepositoryAPI {
	return &LookupRepository{db: db, table: "dim_local_atividade", resource: "local_atividade"}
}

func NewRegimeTrabalhoRepository(db *gorm.DB) dimension.LookupRepositoryAPI {
	return &LookupRepository{db: db, table: "dim_regime_trabalho", resource: "regime_trabalho"}
}

func NewTipoRequerimentoRepository(db *gorm.DB) dimension.LookupRepositoryAPI {
	return &LookupRepository{db: db, table: "dim_tipo_requerimento", resource: "tipo_requerimento"}
}

func (r *LookupRepository) GetAll() ([]*dimension.Lookup, error) {
	var rows []*dimension.Lookup
	err := r.db.Table(r.table).Order("descricao ASC").Find(&rows).Error
	return rows, TranslateError(err, r.resource)
}

func (r *LookupRepository) GetByCodigo(codigo string) (*dimension.Lookup, error) {
	var row dimension.Lookup
	if err := r.db.Table(r.table).Where("codigo = ?", codigo).First(&row).Error; err != nil {
		return nil, TranslateError(err, r.resource)
	}
	return &row, nil
}

func (r *LookupRepository) Create(row *dimension.Lookup) error {
	return TranslateError(r.db.Table(r.table).Create(row).Error, r.resource)
}

func (r *LookupRepository) Update(row *dimension.Lookup) error {
	err := r.db.Table(r.table).
		Where("codigo = ?", row.Codigo).
		Update("descricao", row.Descricao).Error
	return TranslateError(err, r.resource)
}

func (r *LookupRepository) Delete(codigo string) error {
	err := r.db.Table(r.table).Where("codigo = ?", codigo).Delete(&dimension.Lookup{}).Error
	return TranslateError(err, r.resource)
}

// ---------------------------------------------------------------- cargos

type CargoRepository struct {
	db *gorm.DB
}

func NewCargoRepository(db *gorm.DB) dimension.CargoRepositoryAPI {
	return &CargoRepository{db: db}
}

func (r *CargoRepository) GetAll() ([]*dimDatamodel.Cargo, error) {
	var cargos []*dimDatamodel.Cargo
	err := r.db.Order("nome ASC").Find(&cargos).Error
	return cargos, TranslateError(err, "cargo")
}

func (r *CargoRepository) GetByID(id int64) (*dimDatamodel.Cargo, error) {
	var cargo dimDatamodel.Cargo
	if err := r.db.Where("id = ?", id).First(&cargo).Error; err != nil {
		return nil, TranslateError(err, "cargo")
	}
	return &cargo, nil
}

func (r *CargoRepository) Create(cargo *dimDatamodel.Cargo) error {
	return TranslateError(r.db.Create(cargo).Error, "cargo")
}

func (r *CargoRepository) Update(cargo *dimDatamodel.Cargo) error {
	return TranslateError(r.db.Save(cargo).Error, "cargo")
}

func (r *CargoRepository) Delete(id int64) error {
	err := r.db.Where("id = ?", id).Delete(&dimDatamodel.Cargo{}).Error
	return TranslateError(err, "cargo")
}

// ---------------------------------------------------------------- riscos

type RiscoRepository struct {
	db *gorm.DB
}

func NewRiscoRepository(db *gorm.DB) dimension.RiscoRepositoryAPI {
	return &RiscoRepository{db: db}
}

func (r *RiscoRepository) GetAll() ([]*dimDatamodel.Risco, error) {
	var riscos []*dimDatamodel.Risco
	err := r.db.Order("codigo ASC, subcategoria ASC, descricao ASC").Find(&riscos).Error
	return riscos, TranslateError(err, "risco")
}

func (r *RiscoRepository) GetByID(id int64) (*dimDatamodel.Risco, error) {
	var risco dimDatamodel.Risco
	if err := r.db.Where("id = ?", id).First(&risco).Error; err != nil {
		return nil, TranslateError(err, "risco")
	}
	return &risco, nil
}

func (r *RiscoRepository) Create(risco *dimDatamodel.Risco) error {
	return TranslateError(r.db.Create(risco).Error, "risco")
}

func (r *RiscoRepository) Update(risco *dimDatamodel.Risco) error {
	return TranslateError(r.db.Save(risco).Error, "risco")
}

func (r *RiscoRepository) Delete(id int64) error {
	err := r.db.Where("id = ?", id).Delete(&dimDatamodel.Risco{}).Error
	return TranslateError(err, "risco")
}
