package requerimento

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
	reqDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/requerimento"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetAll() ([]*reqDatamodel.Requerimento, error)
	GetByID(reqNum int64) (*reqDatamodel.Requerimento, error)
	Create(row *reqDatamodel.Requerimento) error
	// Update applies the column updates and, when riscos is non-nil, replaces
	// the association set, all inside one transaction.
	Update(reqNum int64, updates map[string]interface{}, riscos []dimDatamodel.Risco) error
	Delete(reqNum int64) error
}

// DimensionResolverAPI turns write-representation natural keys into dimension
// rows. Every method reports gorm.ErrRecordNotFound for a key that does not
// resolve.
type DimensionResolverAPI interface {
	User(matricula string) (*dimDatamodel.User, error)
	UO(codigo string) (*dimDatamodel.UO, error)
	RegimeTrabalho(codigo string) (*dimDatamodel.RegimeTrabalho, error)
	LocalAtividade(codigo string) (*dimDatamodel.LocalAtividade, error)
	TipoRequerimento(codigo string) (*dimDatamodel.TipoRequerimento, error)
	Riscos(ids []int64) ([]dimDatamodel.Risco, error)
}

type Service struct {
	repo     RepositoryAPI
	resolver DimensionResolverAPI
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, resolver DimensionResolverAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, logger: logger}
}

func (s *Service) GetAll() ([]*Requerimento, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list requerimentos", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(reqNum int64) (*Requerimento, error) {
	row, err := s.repo.GetByID(reqNum)
	if err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto CreateRequerimentoDTO) (*Requerimento, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if _, err := s.resolveUser(dto.RequerenteMatricula, "requerente_matricula"); err != nil {
		return nil, err
	}
	if _, err := s.resolveUser(dto.FuncionarioMatricula, "funcionario_matricula"); err != nil {
		return nil, err
	}
	if err := s.checkLookup("uo_codigo", dto.UOCodigo, func(c string) error {
		_, err := s.resolver.UO(c)
		return err
	}); err != nil {
		return nil, err
	}
	if err := s.checkLookup("regime_trabalho_codigo", dto.RegimeTrabalhoCodigo, func(c string) error {
		_, err := s.resolver.RegimeTrabalho(c)
		return err
	}); err != nil {
		return nil, err
	}
	if err := s.checkLookup("local_atividade_codigo", dto.LocalAtividadeCodigo, func(c string) error {
		_, err := s.resolver.LocalAtividade(c)
		return err
	}); err != nil {
		return nil, err
	}
	if err := s.checkLookup("tipo_requerimento_codigo", dto.TipoRequerimentoCodigo, func(c string) error {
		_, err := s.resolver.TipoRequerimento(c)
		return err
	}); err != nil {
		return nil, err
	}

	riscos, err := s.resolveRiscos(dto.RiscosIDs)
	if err != nil {
		return nil, err
	}

	docUUID := dto.DocUUID
	if docUUID == "" {
		docUUID = uuid.NewString()
	}

	row := &reqDatamodel.Requerimento{
		Status:                 dto.Status,
		DataInicio:             dto.DataInicio,
		DataFim:                dto.DataFim,
		AtividadesExecutadas:   dto.AtividadesExecutadas,
		DataProcessamento:      dto.DataProcessamento,
		DataAprovacao:          dto.DataAprovacao,
		DocUUID:                docUUID,
		RequerenteMatricula:    dto.RequerenteMatricula,
		FuncionarioMatricula:   dto.FuncionarioMatricula,
		UOCodigo:               dto.UOCodigo,
		RegimeTrabalhoCodigo:   dto.RegimeTrabalhoCodigo,
		LocalAtividadeCodigo:   dto.LocalAtividadeCodigo,
		TipoRequerimentoCodigo: dto.TipoRequerimentoCodigo,
		Riscos:                 riscos,
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create requerimento", "doc_uuid", docUUID, "error", err)
		return nil, err
	}

	return s.GetByID(row.ReqNum)
}

func (s *Service) Update(reqNum int64, dto UpdateRequerimentoDTO) (*Requerimento, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByID(reqNum); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.DataInicio != nil {
		updates["data_inicio"] = *dto.DataInicio
	}
	if dto.DataFim != nil {
		updates["data_fim"] = *dto.DataFim
	}
	if dto.AtividadesExecutadas != nil {
		updates["atividades_executadas"] = *dto.AtividadesExecutadas
	}
	if dto.DataProcessamento != nil {
		updates["data_processamento"] = *dto.DataProcessamento
	}
	if dto.DataAprovacao != nil {
		updates["data_aprovacao"] = *dto.DataAprovacao
	}
	if dto.DocUUID != nil {
		updates["doc_uuid"] = *dto.DocUUID
	}

	if dto.RequerenteMatricula != nil {
		if _, err := s.resolveUser(*dto.RequerenteMatricula, "requerente_matricula"); err != nil {
			return nil, err
		}
		updates["requerente_matricula"] = *dto.RequerenteMatricula
	}
	if dto.FuncionarioMatricula != nil {
		if _, err := s.resolveUser(*dto.FuncionarioMatricula, "funcionario_matricula"); err != nil {
			return nil, err
		}
		updates["funcionario_matricula"] = *dto.FuncionarioMatricula
	}
	if dto.UOCodigo != nil {
		if err := s.checkLookup("uo_codigo", *dto.UOCodigo, func(c string) error {
			_, err := s.resolver.UO(c)
			return err
		}); err != nil {
			return nil, err
		}
		updates["uo_codigo"] = *dto.UOCodigo
	}
	if dto.RegimeTrabalhoCodigo != nil {
		if err := s.checkLookup("regime_trabalho_codigo", *dto.RegimeTrabalhoCodigo, func(c string) error {
			_, err := s.resolver.RegimeTrabalho(c)
			return err
		}); err != nil {
			return nil, err
		}
		updates["regime_trabalho_codigo"] = *dto.RegimeTrabalhoCodigo
	}
	if dto.LocalAtividadeCodigo != nil {
		if err := s.checkLookup("local_atividade_codigo", *dto.LocalAtividadeCodigo, func(c string) error {
			_, err := s.resolver.LocalAtividade(c)
			return err
		}); err != nil {
			return nil, err
		}
		updates["local_atividade_codigo"] = *dto.LocalAtividadeCodigo
	}
	if dto.TipoRequerimentoCodigo != nil {
		if err := s.checkLookup("tipo_requerimento_codigo", *dto.TipoRequerimentoCodigo, func(c string) error {
			_, err := s.resolver.TipoRequerimento(c)
			return err
		}); err != nil {
			return nil, err
		}
		updates["tipo_requerimento_codigo"] = *dto.TipoRequerimentoCodigo
	}

	var riscos []dimDatamodel.Risco
	if dto.RiscosPresent() {
		resolved, err := s.resolveRiscos(dto.RiscosIDs)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			resolved = []dimDatamodel.Risco{}
		}
		riscos = resolved
	}

	if err := s.repo.Update(reqNum, updates, riscos); err != nil {
		s.logger.Error("failed to update requerimento", "req_num", reqNum, "error", err)
		return nil, err
	}

	return s.GetByID(reqNum)
}

func (s *Service) Delete(reqNum int64) error {
	if _, err := s.repo.GetByID(reqNum); err != nil {
		return err
	}
	if err := s.repo.Delete(reqNum); err != nil {
		s.logger.Error("failed to delete requerimento", "req_num", reqNum, "error", err)
		return err
	}
	return nil
}

func (s *Service) resolveUser(matricula, field string) (*dimDatamodel.User, error) {
	user, err := s.resolver.User(matricula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewReferentialViolationError(field, matricula)
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) checkLookup(field, codigo string, lookup func(string) error) error {
	if err := lookup(codigo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewReferentialViolationError(field, codigo)
		}
		return err
	}
	return nil
}

// resolveRiscos loads each referenced risk row; ids are collapsed to a set
// before lookup, so duplicates in the payload are harmless.
func (s *Service) resolveRiscos(ids []int64) ([]dimDatamodel.Risco, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	riscos, err := s.resolver.Riscos(unique)
	if err != nil {
		return nil, err
	}
	if len(riscos) != len(unique) {
		found := make(map[int64]struct{}, len(riscos))
		for _, r := range riscos {
			found[r.ID] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				return nil, internal.NewReferentialViolationError("riscos_ids", strconv.FormatInt(id, 10))
			}
		}
	}
	return riscos, nil
}
