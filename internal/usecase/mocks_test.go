package usecase

import (
	"context"

	"github.com/google/uuid"

	"jobhunter/internal/aggregator"
	"jobhunter/internal/ai"
	"jobhunter/internal/jobsource"
	"jobhunter/internal/knowledge"
	"jobhunter/internal/repository"
)

type mockJobRepo struct {
	existing map[string]bool
	inserted []jobsource.NormalizedJob
	jobs     []repository.Job
	byID     map[uuid.UUID]repository.Job
	matches  map[uuid.UUID]int
	statuses map[uuid.UUID]string
	err      error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		existing: map[string]bool{},
		byID:     map[uuid.UUID]repository.Job{},
		matches:  map[uuid.UUID]int{},
		statuses: map[uuid.UUID]string{},
	}
}

func (m *mockJobRepo) ExistsBySource(_ context.Context, source, sourceID string) (bool, error) {
	return m.existing[source+":"+sourceID], m.err
}

func (m *mockJobRepo) Insert(_ context.Context, job jobsource.NormalizedJob) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	m.inserted = append(m.inserted, job)
	return uuid.New(), nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return repository.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListJobs(context.Context, repository.JobFilter) ([]repository.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) ListUnscored(context.Context, int) ([]repository.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]repository.Job, error) {
	out := make([]repository.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := m.byID[id]; ok {
			out = append(out, j)
		}
	}
	return out, m.err
}

func (m *mockJobRepo) UpdateMatch(_ context.Context, id uuid.UUID, score int, _ string) error {
	m.matches[id] = score
	return m.err
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	m.statuses[id] = status
	return m.err
}

type mockConfigRepo struct {
	configs []repository.SearchConfig
	err     error
}

func (m *mockConfigRepo) List(context.Context) ([]repository.SearchConfig, error) {
	return m.configs, m.err
}
func (m *mockConfigRepo) ListActive(context.Context) ([]repository.SearchConfig, error) {
	return m.configs, m.err
}
func (m *mockConfigRepo) GetByID(context.Context, uuid.UUID) (repository.SearchConfig, error) {
	return repository.SearchConfig{}, repository.ErrSearchConfigNotFound
}
func (m *mockConfigRepo) Create(_ context.Context, cfg repository.SearchConfig) (repository.SearchConfig, error) {
	return cfg, m.err
}
func (m *mockConfigRepo) Update(context.Context, repository.SearchConfig) error { return m.err }
func (m *mockConfigRepo) Delete(context.Context, uuid.UUID) error               { return m.err }

type mockKnowledgeRepo struct {
	entries []knowledge.Entry
	err     error
}

func (m *mockKnowledgeRepo) List(context.Context, string) ([]repository.KnowledgeEntry, error) {
	return nil, m.err
}
func (m *mockKnowledgeRepo) Create(_ context.Context, e repository.KnowledgeEntry) (repository.KnowledgeEntry, error) {
	return e, m.err
}
func (m *mockKnowledgeRepo) Update(context.Context, uuid.UUID, string) (repository.KnowledgeEntry, error) {
	return repository.KnowledgeEntry{}, m.err
}
func (m *mockKnowledgeRepo) Delete(context.Context, uuid.UUID) error { return m.err }
func (m *mockKnowledgeRepo) LoadBase(context.Context) (*knowledge.Base, error) {
	if m.err != nil {
		return nil, m.err
	}
	return knowledge.NewBase(m.entries), nil
}

type mockApplicationRepo struct {
	byID    map[uuid.UUID]repository.Application
	byJobID map[uuid.UUID]repository.Application
	created []repository.Application
	saved   map[uuid.UUID][]byte
	savedQs map[uuid.UUID][]repository.NewQuestion
	err     error
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		byID:    map[uuid.UUID]repository.Application{},
		byJobID: map[uuid.UUID]repository.Application{},
		saved:   map[uuid.UUID][]byte{},
		savedQs: map[uuid.UUID][]repository.NewQuestion{},
	}
}

func (m *mockApplicationRepo) Create(_ context.Context, jobID uuid.UUID) (repository.Application, error) {
	if m.err != nil {
		return repository.Application{}, m.err
	}
	app := repository.Application{ID: uuid.New(), JobID: jobID, Status: repository.ApplicationStatusDraft}
	m.created = append(m.created, app)
	m.byID[app.ID] = app
	return app, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return repository.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) GetByJobID(_ context.Context, jobID uuid.UUID) (repository.Application, error) {
	a, ok := m.byJobID[jobID]
	if !ok {
		return repository.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) List(context.Context, string) ([]repository.Application, error) {
	return nil, m.err
}

func (m *mockApplicationRepo) SaveTailoredResume(_ context.Context, id uuid.UUID, resumeJSON []byte, _ string, questions []repository.NewQuestion) error {
	if m.err != nil {
		return m.err
	}
	m.saved[id] = resumeJSON
	m.savedQs[id] = questions
	return nil
}

func (m *mockApplicationRepo) UpdateStatus(context.Context, uuid.UUID, string, string) error {
	return m.err
}

type mockBoards struct {
	result aggregator.Result
	calls  int
}

func (m *mockBoards) Search(context.Context, []string, jobsource.SearchParams) aggregator.Result {
	m.calls++
	return m.result
}

type mockScorer struct {
	results map[string]ai.MatchResult
	err     error
}

func (m *mockScorer) ScoreMatch(_ context.Context, description string, _ *knowledge.Base) (ai.MatchResult, error) {
	if m.err != nil {
		return ai.MatchResult{}, m.err
	}
	if r, ok := m.results[description]; ok {
		return r, nil
	}
	return ai.MatchResult{Score: 50, Reasoning: "ok", Recommendation: ai.RecommendationPartial}, nil
}

type mockTailor struct {
	resume ai.TailoredResume
	err    error
	calls  int
}

func (m *mockTailor) TailorResume(context.Context, string, *knowledge.Base) (ai.TailoredResume, error) {
	m.calls++
	if m.err != nil {
		return ai.TailoredResume{}, m.err
	}
	return m.resume, nil
}

type recordingNotifier struct {
	searches []int
	scored   []int
}

func (n *recordingNotifier) SearchCompleted(found, inserted int) {
	n.searches = append(n.searches, inserted)
}

func (n *recordingNotifier) JobsScored(scored int) {
	n.scored = append(n.scored, scored)
}
