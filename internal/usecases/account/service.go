package account

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// AccountSource lista as contas de anúncio disponíveis no provedor
type AccountSource interface {
	ListAccounts() ([]*domain.Account, error)
}

// PropertyVerifier valida o acesso a uma propriedade de web analytics
type PropertyVerifier interface {
	CheckProperty(propertyID string) (bool, error)
}

type AccountService interface {
	UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	accountSource     AccountSource
	propertyVerifier  PropertyVerifier
}

func NewService(
	accountRepository repository.AccountRepository,
	accountSource AccountSource,
	propertyVerifier PropertyVerifier,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		accountSource:     accountSource,
		propertyVerifier:  propertyVerifier,
	}
}

func (s *Service) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	return accounts, nil
}

// SyncAccounts importa do provedor de anúncios as contas ainda não
// cadastradas. Contas já existentes nunca são sobrescritas pela
// sincronização.
func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	accounts, err := s.accountSource.ListAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter contas do provedor de anúncios")
		return response, NewAccountError(ErrProviderSync, apiErrors.ErrExternalService, "Falha ao obter contas do provedor de anúncios")
	}

	existing, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar contas existentes no banco de dados")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	toCreate := make([]*domain.Account, 0)
	for _, acc := range accounts {
		if _, exists := existing[acc.ExternalID]; exists {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}

		acc.ID = accountID
		acc.Status = domain.AccountStatusActive

		toCreate = append(toCreate, acc)
	}

	if len(toCreate) > 0 {
		if err := s.accountRepository.SaveOrUpdate(toCreate); err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	quantity := len(toCreate)
	logrus.Infof("%d contas sincronizadas com sucesso", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

// UpdateAccount atualiza apelido, status e propriedade de web analytics.
// A propriedade só é gravada depois de verificada no provedor.
func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conta no repositório")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.PropertyID != nil && *request.PropertyID != "" {
		ok, err := s.propertyVerifier.CheckProperty(*request.PropertyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao verificar propriedade de web analytics")
			return nil, NewAccountErrorWithID(ErrInvalidProperty, apiErrors.ErrExternalService, request.ID, "Falha ao verificar propriedade de web analytics")
		}

		if !ok {
			logrus.Warnf("Propriedade inválida para a conta %s", account.ID)
			return nil, NewAccountErrorWithID(ErrInvalidProperty, apiErrors.ErrInvalidRequest, request.ID, "Propriedade de web analytics inválida para a conta")
		}

		account.PropertyID = request.PropertyID
	}

	if request.Nickname != nil {
		account.Nickname = request.Nickname
	}

	if request.Status != nil {
		account.Status = domain.AccountStatus(*request.Status)
	}

	if err := s.accountRepository.UpdateAccount(account); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar conta no repositório")
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return account, nil
}
