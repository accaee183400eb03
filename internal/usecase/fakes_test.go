package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/service"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type fakeRoleProfileStore struct {
	profiles     map[string]*model.RoleProfile
	searchResult []model.RoleProfile
	embedded     map[string]pgvector.Vector
}

func newFakeRoleProfileStore(profiles ...*model.RoleProfile) *fakeRoleProfileStore {
	store := &fakeRoleProfileStore{
		profiles: map[string]*model.RoleProfile{},
		embedded: map[string]pgvector.Vector{},
	}
	for _, p := range profiles {
		store.profiles[p.RoleKey] = p
	}
	return store
}

func (s *fakeRoleProfileStore) FindByKey(roleKey string) (*model.RoleProfile, error) {
	profile, ok := s.profiles[roleKey]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (s *fakeRoleProfileStore) List() ([]model.RoleProfile, error) {
	var out []model.RoleProfile
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeRoleProfileStore) UpdateEmbedding(id string, embedding pgvector.Vector) error {
	s.embedded[id] = embedding
	return nil
}

func (s *fakeRoleProfileStore) Search(embedding pgvector.Vector, topK int) ([]model.RoleProfile, error) {
	if len(s.searchResult) > topK {
		return s.searchResult[:topK], nil
	}
	return s.searchResult, nil
}

type fakeApplicationStore struct {
	apps map[string]*model.Application
}

func newFakeApplicationStore(apps ...*model.Application) *fakeApplicationStore {
	store := &fakeApplicationStore{apps: map[string]*model.Application{}}
	for _, a := range apps {
		store.apps[a.ID.String()] = a
	}
	return store
}

func (s *fakeApplicationStore) FindWithJob(id string) (*model.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

type fakeAssessmentStore struct {
	transcripts   []*model.Transcript
	assessments   []*model.Assessment
	presentations []*model.Presentation
	saveErr       error
	clock         time.Time
}

func (s *fakeAssessmentStore) SaveGeneration(transcript *model.Transcript, assessment *model.Assessment, presentation *model.Presentation) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.clock = s.clock.Add(time.Second)

	transcript.ID = uuid.New()
	transcript.CreatedAt = s.clock
	s.transcripts = append(s.transcripts, transcript)

	assessment.ID = uuid.New()
	assessment.TranscriptID = transcript.ID
	assessment.CreatedAt = s.clock
	s.assessments = append(s.assessments, assessment)

	if presentation == nil {
		return nil
	}
	for _, prior := range s.presentations {
		if prior.ApplicationID == assessment.ApplicationID && prior.Status != model.PresentationStatusArchived {
			prior.Status = model.PresentationStatusArchived
		}
	}
	presentation.ID = uuid.New()
	presentation.AssessmentID = assessment.ID
	presentation.CreatedAt = s.clock
	s.presentations = append(s.presentations, presentation)
	return nil
}

func (s *fakeAssessmentStore) FindByID(id string) (*model.Assessment, error) {
	for _, a := range s.assessments {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAssessmentStore) LatestByType(applicationID, assessmentType string) (*model.Assessment, error) {
	var latest *model.Assessment
	for _, a := range s.assessments {
		if a.ApplicationID.String() != applicationID || a.Type != assessmentType {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (s *fakeAssessmentStore) ListByApplication(applicationID string, page, pageSize int) ([]model.Assessment, int64, error) {
	var out []model.Assessment
	for _, a := range s.assessments {
		if a.ApplicationID.String() == applicationID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeAssessmentStore) UpdateEditable(id string, fields map[string]any) (*model.Assessment, error) {
	assessment, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		switch key {
		case "summary":
			assessment.Summary = value.(string)
		case "technical_assessment":
			v := value.(string)
			assessment.TechnicalAssessment = &v
		case "soft_skills_assessment":
			v := value.(string)
			assessment.SoftSkillsAssessment = &v
		case "strengths":
			assessment.Strengths = value.(model.StrengthList)
		case "concerns":
			assessment.Concerns = value.(model.StringList)
		}
	}
	return assessment, nil
}

type fakePresentationStore struct {
	items map[string]*model.Presentation
}

func newFakePresentationStore(items ...*model.Presentation) *fakePresentationStore {
	store := &fakePresentationStore{items: map[string]*model.Presentation{}}
	for _, p := range items {
		store.items[p.ID.String()] = p
	}
	return store
}

func (s *fakePresentationStore) FindByID(id string) (*model.Presentation, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *fakePresentationStore) FindByToken(shareToken string) (*model.Presentation, error) {
	for _, p := range s.items {
		if p.ShareToken == shareToken {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePresentationStore) UpdateOverlay(id string, fields map[string]any) (*model.Presentation, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		switch key {
		case "recruiter_notes":
			p.RecruiterNotes = value.(string)
		case "soft_values_notes":
			p.SoftValuesNotes = value.(string)
		case "skill_scores":
			p.SkillScores = value.(model.SkillScores)
		}
	}
	return p, nil
}

func (s *fakePresentationStore) SetStatus(id, status string, publishedAt *time.Time) (*model.Presentation, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if publishedAt != nil {
		p.PublishedAt = publishedAt
	}
	return p, nil
}

type stubGateway struct {
	args  string
	err   error
	calls int

	lastSystem string
	lastUser   string
	lastTool   service.ToolFunction
}

func (g *stubGateway) CompleteToolCall(ctx context.Context, systemPrompt, userPrompt string, tool service.ToolFunction) (string, error) {
	g.calls++
	g.lastSystem = systemPrompt
	g.lastUser = userPrompt
	g.lastTool = tool
	if g.err != nil {
		return "", g.err
	}
	return g.args, nil
}

type stubEmbedder struct {
	values []float32
	err    error
	calls  int
}

func (e *stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.values, nil
}
