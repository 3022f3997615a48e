package requerimento

import (
	"time"

	reqDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/requerimento"
	"github.com/lmoreira/requerimento-service/internal/dimension"
)

// Requerimento is the read representation of a fact row: every singular
// dimension reference is embedded as a full object and the associated risks
// come along as a list, so clients never need follow-up lookups.
type Requerimento struct {
	ReqNum               int64      `json:"req_num"`
	Status               string     `json:"status"`
	DataInicio           *time.Time `json:"data_inicio,omitempty"`
	DataFim              *time.Time `json:"data_fim,omitempty"`
	AtividadesExecutadas string     `json:"atividades_executadas"`
	DataCriacao          time.Time  `json:"data_criacao"`
	DataProcessamento    *time.Time `json:"data_processamento,omitempty"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty"`
	DocUUID              string     `json:"doc_uuid"`

	Requerente       dimension.User    `json:"requerente"`
	Funcionario      dimension.User    `json:"funcionario"`
	UO               dimension.Lookup  `json:"uo"`
	RegimeTrabalho   dimension.Lookup  `json:"regime_trabalho"`
	LocalAtividade   dimension.Lookup  `json:"local_atividade"`
	TipoRequerimento dimension.Lookup  `json:"tipo_requerimento"`
	Riscos           []dimension.Risco `json:"riscos"`
}

func FromDataModel(row *reqDatamodel.Requerimento) *Requerimento {
	riscos := make([]dimension.Risco, len(row.Riscos))
	for i := range row.Riscos {
		riscos[i] = *dimension.RiscoFromDataModel(&row.Riscos[i])
	}

	return &Requerimento{
		ReqNum:               row.ReqNum,
		Status:               row.Status,
		DataInicio:           row.DataInicio,
		DataFim:              row.DataFim,
		AtividadesExecutadas: row.AtividadesExecutadas,
		DataCriacao:          row.DataCriacao,
		DataProcessamento:    row.DataProcessamento,
		DataAprovacao:        row.DataAprovacao,
		DocUUID:              row.DocUUID,
		Requerente:           *dimension.UserFromDataModel(&row.Requerente),
		Funcionario:          *dimension.UserFromDataModel(&row.Funcionario),
		UO:                   dimension.Lookup{Codigo: row.UO.Codigo, Descricao: row.UO.Descricao},
		RegimeTrabalho:       dimension.Lookup{Codigo: row.RegimeTrabalho.Codigo, Descricao: row.RegimeTrabalho.Descricao},
		LocalAtividade:       dimension.Lookup{Codigo: row.LocalAtividade.Codigo, Descricao: row.LocalAtividade.Descricao},
		TipoRequerimento:     dimension.Lookup{Codigo: row.TipoRequerimento.Codigo, Descricao: row.TipoRequerimento.Descricao},
		Riscos:               riscos,
	}
}

func FromDataModelSlice(rows []*reqDatamodel.Requerimento) []*Requerimento {
	result := make([]*Requerimento, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
