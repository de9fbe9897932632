package usecase

import (
	"remindly/internal/task/repository"
	"remindly/pkg/gemini"
	pkgLog "remindly/pkg/log"
	"remindly/pkg/schedule"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       *gemini.Client
	repo      repository.TaskRepository
	listRepo  repository.ListRepository
	extractor *schedule.Extractor
	timezone  string
}

// New creates a new task UseCase instance. llm may be nil, in which case
// titles are stored as extracted without LLM cleanup.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	repo repository.TaskRepository,
	listRepo repository.ListRepository,
	extractor *schedule.Extractor,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		repo:      repo,
		listRepo:  listRepo,
		extractor: extractor,
		timezone:  timezone,
	}
}
