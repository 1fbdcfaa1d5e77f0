package syncing

import "github.com/pkg/errors"

// Erros tipados do Sync Runner. Os handlers HTTP traduzem cada um para o
// código de API e status correspondentes
var (
	ErrIntegrationNotFound     = errors.New("integração não encontrada")
	ErrIntegrationNotConnected = errors.New("integração não está conectada")
	ErrProviderMismatch        = errors.New("provedor informado não corresponde ao da integração")
	ErrUnknownProvider         = errors.New("provedor de anúncios desconhecido")
	ErrTokenRefreshFailed      = errors.New("token expirado e a renovação falhou")
	ErrProviderUnavailable     = errors.New("API do provedor de anúncios indisponível")
)
