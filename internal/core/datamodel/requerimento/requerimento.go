package requerimento

import (
	"time"

	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
)

// Requerimento is the fact row. Every singular dimension reference is
// protected by a RESTRICT foreign key; riscos go through a join table with the
// same policy. DataCriacao is writable only on insert.
type Requerimento struct {
	ReqNum               int64      `json:"req_num" gorm:"column:req_num;primaryKey;autoIncrement"`
	Status               string     `json:"status" gorm:"column:status;size:50;not null"`
	DataInicio           *time.Time `json:"data_inicio,omitempty" gorm:"column:data_inicio;type:date"`
	DataFim              *time.Time `json:"data_fim,omitempty" gorm:"column:data_fim;type:date"`
	AtividadesExecutadas string     `json:"atividades_executadas" gorm:"column:atividades_executadas;type:text"`
	DataCriacao          time.Time  `json:"data_criacao" gorm:"column:data_criacao;autoCreateTime;<-:create"`
	DataProcessamento    *time.Time `json:"data_processamento,omitempty" gorm:"column:data_processamento"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty" gorm:"column:data_aprovacao"`
	DocUUID              string     `json:"doc_uuid" gorm:"column:doc_uuid;size:100;not null;uniqueIndex:uq_fato_doc_uuid"`

	RequerenteMatricula    string `json:"-" gorm:"column:requerente_matricula;size:20;not null"`
	FuncionarioMatricula   string `json:"-" gorm:"column:funcionario_matricula;size:20;not null"`
	UOCodigo               string `json:"-" gorm:"column:uo_codigo;size:10;not null"`
	RegimeTrabalhoCodigo   string `json:"-" gorm:"column:regime_trabalho_codigo;size:10;not null"`
	LocalAtividadeCodigo   string `json:"-" gorm:"column:local_atividade_codigo;size:10;not null"`
	TipoRequerimentoCodigo string `json:"-" gorm:"column:tipo_requerimento_codigo;size:10;not null"`

	Requerente       dimDatamodel.User             `json:"requerente" gorm:"foreignKey:RequerenteMatricula;references:Matricula;constraint:OnDelete:RESTRICT"`
	Funcionario      dimDatamodel.User             `json:"funcionario" gorm:"foreignKey:FuncionarioMatricula;references:Matricula;constraint:OnDelete:RESTRICT"`
	UO               dimDatamodel.UO               `json:"uo" gorm:"foreignKey:UOCodigo;references:Codigo;constraint:OnDelete:RESTRICT"`
	RegimeTrabalho   dimDatamodel.RegimeTrabalho   `json:"regime_trabalho" gorm:"foreignKey:RegimeTrabalhoCodigo;references:Codigo;constraint:OnDelete:RESTRICT"`
	LocalAtividade   dimDatamodel.LocalAtividade   `json:"local_atividade" gorm:"foreignKey:LocalAtividadeCodigo;references:Codigo;constraint:OnDelete:RESTRICT"`
	TipoRequerimento dimDatamodel.TipoRequerimento `json:"tipo_requerimento" gorm:"foreignKey:TipoRequerimentoCodigo;references:Codigo;constraint:OnDelete:RESTRICT"`

	Riscos []dimDatamodel.Risco `json:"riscos" gorm:"many2many:fato_requerimento_riscos;constraint:OnDelete:RESTRICT"`
}

func (Requerimento) TableName() string {
	return "fato_requerimento"
}
