package container

import (
	"time"

	app "github.com/thwqsz/Bot-ilia/internal/application"
	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

type Container struct {
	Survey *app.SurveyService
}

func New(
	bank *entity.Bank,
	sessions port.SessionRepository,
	credentials port.CredentialIssuer,
	transcripts port.TranscriptSink,
	ownerID int64,
	fallbackLink string,
	loc *time.Location,
) *Container {
	survey := app.NewSurveyService(bank, sessions, credentials, transcripts, ownerID, fallbackLink, loc)

	return &Container{
		Survey: survey,
	}
}
