package dimension

import "errors"

type CreateUserDTO struct {
	Matricula string  `json:"matricula"`
	Nome      string  `json:"nome"`
	Email     *string `json:"email,omitempty"`
	Funcao    *string `json:"funcao,omitempty"`
	UOCodigo  *string `json:"uo_codigo,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Matricula == "" {
		return errors.New("matricula is required")
	}
	if dto.Nome == "" {
		return errors.New("nome is required")
	}
	return nil
}

type UpdateUserDTO struct {
	Nome     string  `json:"nome"`
	Email    *string `json:"email,omitempty"`
	Funcao   *string `json:"funcao,omitempty"`
	UOCodigo *string `json:"uo_codigo,omitempty"`
}

func (dto UpdateUserDTO) Validate() error {
	if dto.Nome == "" {
		return errors.New("nome is required")
	}
	return nil
}

// PatchUserDTO applies only the fields present in the payload. Pointer fields
// distinguish "absent" from "explicit empty".
type PatchUserDTO struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Funcao   *string `json:"funcao,omitempty"`
	UOCodigo *string `json:"uo_codigo,omitempty"`
}

type LookupDTO struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

func (dto LookupDTO) Validate() error {
	if dto.Codigo == "" {
		return errors.New("codigo is required")
	}
	if dto.Descricao == "" {
		return errors.New("descricao is required")
	}
	return nil
}

type UpdateLookupDTO struct {
	Descricao string `json:"descricao"`
}

func (dto UpdateLookupDTO) Validate() error {
	if dto.Descricao == "" {
		return errors.New("descricao is required")
	}
	return nil
}

type CargoDTO struct {
	Nome string `json:"nome"`
}

func (dto CargoDTO) Validate() error {
	if dto.Nome == "" {
		return errors.New("nome is required")
	}
	return nil
}

type CreateRiscoDTO struct {
	Codigo       string `json:"codigo"`
	Categoria    string `json:"categoria"`
	Subcategoria string `json:"subcategoria"`
	Descricao    string `json:"descricao"`
}

func (dto CreateRiscoDTO) Validate() error {
	if dto.Codigo == "" {
		return errors.New("codigo is required")
	}
	if dto.Subcategoria == "" {
		return errors.New("subcategoria is required")
	}
	if dto.Descricao == "" {
		return errors.New("descricao is required")
	}
	return nil
}

type PatchRiscoDTO struct {
	Codigo       *string `json:"codigo,omitempty"`
	Categoria    *string `json:"categoria,omitempty"`
	Subcategoria *string `json:"subcategoria,omitempty"`
	Descricao    *string `json:"descricao,omitempty"`
}
