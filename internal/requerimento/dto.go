package requerimento

import (
	"errors"
	"time"
)

// CreateRequerimentoDTO is the write representation: singular dimensions are
// referenced by their natural keys, risks by surrogate ids. req_num and
// data_criacao are never accepted from a client. A nil RiscosIDs (field
// omitted) associates no risks, same as an explicit empty list.
type CreateRequerimentoDTO struct {
	Status               string     `json:"status"`
	DataInicio           *time.Time `json:"data_inicio,omitempty"`
	DataFim              *time.Time `json:"data_fim,omitempty"`
	AtividadesExecutadas string     `json:"atividades_executadas"`
	DataProcessamento    *time.Time `json:"data_processamento,omitempty"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty"`
	DocUUID              string     `json:"doc_uuid"`

	RequerenteMatricula    string  `json:"requerente_matricula"`
	FuncionarioMatricula   string  `json:"funcionario_matricula"`
	UOCodigo               string  `json:"uo_codigo"`
	RegimeTrabalhoCodigo   string  `json:"regime_trabalho_codigo"`
	LocalAtividadeCodigo   string  `json:"local_atividade_codigo"`
	TipoRequerimentoCodigo string  `json:"tipo_requerimento_codigo"`
	RiscosIDs              []int64 `json:"riscos_ids"`
}

func (dto CreateRequerimentoDTO) Validate() error {
	if dto.Status == "" {
		return errors.New("status is required")
	}
	if dto.RequerenteMatricula == "" {
		return errors.New("requerente_matricula is required")
	}
	if dto.FuncionarioMatricula == "" {
		return errors.New("funcionario_matricula is required")
	}
	if dto.UOCodigo == "" {
		return errors.New("uo_codigo is required")
	}
	if dto.RegimeTrabalhoCodigo == "" {
		return errors.New("regime_trabalho_codigo is required")
	}
	if dto.LocalAtividadeCodigo == "" {
		return errors.New("local_atividade_codigo is required")
	}
	if dto.TipoRequerimentoCodigo == "" {
		return errors.New("tipo_requerimento_codigo is required")
	}
	if dto.DataInicio != nil && dto.DataFim != nil && dto.DataFim.Before(*dto.DataInicio) {
		return errors.New("data_fim cannot be before data_inicio")
	}
	return nil
}

// UpdateRequerimentoDTO applies only fields present in the payload. RiscosIDs
// nil means the association stays untouched; a present list, including an
// empty one, replaces the whole set. For the scalar fields an explicit JSON
// null decodes the same as an absent field, so a set optional date cannot be
// nulled out through a partial update.
type UpdateRequerimentoDTO struct {
	Status               *string    `json:"status,omitempty"`
	DataInicio           *time.Time `json:"data_inicio,omitempty"`
	DataFim              *time.Time `json:"data_fim,omitempty"`
	AtividadesExecutadas *string    `json:"atividades_executadas,omitempty"`
	DataProcessamento    *time.Time `json:"data_processamento,omitempty"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty"`
	DocUUID              *string    `json:"doc_uuid,omitempty"`

	RequerenteMatricula    *string `json:"requerente_matricula,omitempty"`
	FuncionarioMatricula   *string `json:"funcionario_matricula,omitempty"`
	UOCodigo               *string `json:"uo_codigo,omitempty"`
	RegimeTrabalhoCodigo   *string `json:"regime_trabalho_codigo,omitempty"`
	LocalAtividadeCodigo   *string `json:"local_atividade_codigo,omitempty"`
	TipoRequerimentoCodigo *string `json:"tipo_requerimento_codigo,omitempty"`
	RiscosIDs              []int64 `json:"riscos_ids,omitempty"`
}

// RiscosPresent reports whether riscos_ids appeared in the payload. An
// explicit empty list decodes to a non-nil slice, an omitted field stays nil.
func (dto UpdateRequerimentoDTO) RiscosPresent() bool {
	return dto.RiscosIDs != nil
}

func (dto UpdateRequerimentoDTO) Validate() error {
	if dto.Status != nil && *dto.Status == "" {
		return errors.New("status cannot be empty")
	}
	if dto.DocUUID != nil && *dto.DocUUID == "" {
		return errors.New("doc_uuid cannot be empty")
	}
	return nil
}
