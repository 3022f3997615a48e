package dimension

// User is a dimension row keyed by the employee registration number. Rows are
// written both by the reference-data sync and by the API.
type User struct {
	Matricula string  `json:"matricula" gorm:"column:matricula;primaryKey;size:20"`
	Nome      string  `json:"nome" gorm:"column:nome;size:100;not null"`
	Email     *string `json:"email,omitempty" gorm:"column:email;size:254"`
	Funcao    *string `json:"funcao,omitempty" gorm:"column:funcao;size:100"`
	UOCodigo  *string `json:"uo_codigo,omitempty" gorm:"column:uo_codigo;size:10"`
	UO        *UO     `json:"uo,omitempty" gorm:"foreignKey:UOCodigo;references:Codigo;constraint:OnDelete:RESTRICT"`
}

func (User) TableName() string {
	return "dim_user"
}

// UO is the organizational unit dimension. Units unknown to the store are
// auto-created by the sync with the code doubling as description.
type UO struct {
	Codigo    string `json:"codigo" gorm:"column:codigo;primaryKey;size:10"`
	Descricao string `json:"descricao" gorm:"column:descricao;size:100;not null"`
}

func (UO) TableName() string {
	return "dim_uo"
}

type Cargo struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome string `json:"nome" gorm:"column:nome;size:100;not null"`
}

func (Cargo) TableName() string {
	return "dim_cargo"
}

type LocalAtividade struct {
	Codigo    string `json:"codigo" gorm:"column:codigo;primaryKey;size:10"`
	Descricao string `json:"descricao" gorm:"column:descricao;size:100;not null"`
}

func (LocalAtividade) TableName() string {
	return "dim_local_atividade"
}

type TipoRequerimento struct {
	Codigo    string `json:"codigo" gorm:"column:codigo;primaryKey;size:10"`
	Descricao string `json:"descricao" gorm:"column:descricao;size:100;not null"`
}

func (TipoRequerimento) TableName() string {
	return "dim_tipo_requerimento"
}

type RegimeTrabalho struct {
	Codigo    string `json:"codigo" gorm:"column:codigo;primaryKey;size:10"`
	Descricao string `json:"descricao" gorm:"column:descricao;size:100;not null"`
}

func (RegimeTrabalho) TableName() string {
	return "dim_regime_trabalho"
}

// Risco carries a surrogate id; the natural key for merges is the
// (codigo, subcategoria, descricao) triple.
type Risco struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Codigo       string `json:"codigo" gorm:"column:codigo;size:50;not null;uniqueIndex:uq_dim_risk_natural,priority:1;index:idx_dim_risk_codigo;index:idx_dim_risk_codigo_subcategoria,priority:1"`
	Categoria    string `json:"categoria" gorm:"column:categoria;size:120"`
	Subcategoria string `json:"subcategoria" gorm:"column:subcategoria;size:120;not null;uniqueIndex:uq_dim_risk_natural,priority:2;index:idx_dim_risk_codigo_subcategoria,priority:2"`
	Descricao    string `json:"descricao" gorm:"column:descricao;size:400;not null;uniqueIndex:uq_dim_risk_natural,priority:3"`
}

func (Risco) TableName() string {
	return "dim_risk"
}
