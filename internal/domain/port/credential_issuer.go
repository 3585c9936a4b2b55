package port

import "context"

// CredentialIssuer интерфейс сервиса одноразовых ссылок-приглашений
type CredentialIssuer interface {
	// Issue создаёт одноразовую ссылку с ограниченным сроком действия
	// для пользователя userID
	Issue(ctx context.Context, userID int64) (string, error)
}
