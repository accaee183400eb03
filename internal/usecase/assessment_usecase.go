package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/service"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store interfaces are defined here so the pipeline can be exercised without
// a database; the repository package provides the GORM implementations.

type RoleProfileStore interface {
	FindByKey(roleKey string) (*model.RoleProfile, error)
	List() ([]model.RoleProfile, error)
	UpdateEmbedding(id string, embedding pgvector.Vector) error
	Search(embedding pgvector.Vector, topK int) ([]model.RoleProfile, error)
}

type ApplicationStore interface {
	FindWithJob(id string) (*model.Application, error)
}

type AssessmentStore interface {
	SaveGeneration(transcript *model.Transcript, assessment *model.Assessment, presentation *model.Presentation) error
	FindByID(id string) (*model.Assessment, error)
	LatestByType(applicationID, assessmentType string) (*model.Assessment, error)
	ListByApplication(applicationID string, page, pageSize int) ([]model.Assessment, int64, error)
	UpdateEditable(id string, fields map[string]any) (*model.Assessment, error)
}

type AssessmentUsecase struct {
	assessments  AssessmentStore
	applications ApplicationStore
	roleProfiles RoleProfileStore
	gateway      service.OpenRouterServiceInterface
}

func NewAssessmentUsecase(assessments AssessmentStore, applications ApplicationStore, roleProfiles RoleProfileStore, gateway service.OpenRouterServiceInterface) *AssessmentUsecase {
	return &AssessmentUsecase{
		assessments:  assessments,
		applications: applications,
		roleProfiles: roleProfiles,
		gateway:      gateway,
	}
}

type GenerateInput struct {
	ApplicationID  string
	TranscriptText string
	RoleKey        string
	Stage          string // model.AssessmentTypeScreening or model.AssessmentTypeFinal
}

type GenerateOutput struct {
	Assessment   *model.Assessment
	Presentation *model.Presentation // nil for screening
}

// Generate runs one assessment-generation call: lookups, prompt, gateway call
// with a forced tool call, parse, clamp and a single transactional persist.
// Nothing is written unless the whole call succeeds.
func (uc *AssessmentUsecase) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	if strings.TrimSpace(in.TranscriptText) == "" {
		return nil, apperr.Validation("transkript saknas")
	}
	if strings.TrimSpace(in.RoleKey) == "" {
		return nil, apperr.Validation("yrkesroll saknas")
	}
	appID, err := uuid.Parse(in.ApplicationID)
	if err != nil {
		return nil, apperr.Validation("ogiltigt ansöknings-id")
	}
	if in.Stage != model.AssessmentTypeScreening && in.Stage != model.AssessmentTypeFinal {
		return nil, apperr.Validation("ogiltigt steg: %s", in.Stage)
	}

	profile, err := uc.roleProfiles.FindByKey(in.RoleKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("role_profile", "yrkesroll hittades inte")
		}
		return nil, err
	}

	app, err := uc.applications.FindWithJob(in.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("application", "ansökan hittades inte")
		}
		return nil, err
	}

	systemPrompt := service.BuildSystemPrompt(in.Stage, profile, app)
	tool := service.ScreeningTool()
	if in.Stage == model.AssessmentTypeFinal {
		tool = service.FinalTool()
	}

	// Once validation passed, the upstream call and the persist run detached
	// from the request: a dropped browser tab must not abandon a paid LLM
	// call or leave a generated result unpersisted.
	callCtx := context.WithoutCancel(ctx)

	start := time.Now()
	args, err := uc.gateway.CompleteToolCall(callCtx, systemPrompt, in.TranscriptText, tool)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"application_id": in.ApplicationID,
		"stage":          in.Stage,
		"duration":       time.Since(start),
	}).Info("assessment generated")

	var assessment *model.Assessment
	if in.Stage == model.AssessmentTypeScreening {
		assessment, err = parseScreeningArguments(args)
	} else {
		assessment, err = parseFinalArguments(args)
	}
	if err != nil {
		return nil, err
	}
	assessment.ApplicationID = appID
	assessment.RoleProfileID = profile.ID

	interviewType := model.InterviewTypeScreening
	if in.Stage == model.AssessmentTypeFinal {
		interviewType = model.InterviewTypeFull
	}
	transcript := &model.Transcript{
		ApplicationID: appID,
		InterviewType: interviewType,
		Content:       in.TranscriptText,
	}

	var presentation *model.Presentation
	if in.Stage == model.AssessmentTypeFinal {
		presentation, err = buildPresentation(app, profile, assessment)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.assessments.SaveGeneration(transcript, assessment, presentation); err != nil {
		return nil, &apperr.PersistenceError{Op: "save generation", Err: err}
	}

	return &GenerateOutput{Assessment: assessment, Presentation: presentation}, nil
}

// Latest returns the most recent assessment of the given type.
func (uc *AssessmentUsecase) Latest(applicationID, assessmentType string) (*model.Assessment, error) {
	if assessmentType != model.AssessmentTypeScreening && assessmentType != model.AssessmentTypeFinal {
		return nil, apperr.Validation("ogiltig bedömningstyp: %s", assessmentType)
	}
	assessment, err := uc.assessments.LatestByType(applicationID, assessmentType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("assessment", "bedömning hittades inte")
		}
		return nil, err
	}
	return assessment, nil
}

func (uc *AssessmentUsecase) List(applicationID string, page, pageSize int) ([]model.Assessment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.assessments.ListByApplication(applicationID, page, pageSize)
}

// AssessmentPatch carries the fields the recruiter editor may change on an
// assessment. Score columns are deliberately absent.
type AssessmentPatch struct {
	Summary              *string
	TechnicalAssessment  *string
	SoftSkillsAssessment *string
	Strengths            []model.Strength
	Concerns             []string
}

func (uc *AssessmentUsecase) UpdateEditable(id string, patch AssessmentPatch) (*model.Assessment, error) {
	if _, err := uc.assessments.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("assessment", "bedömning hittades inte")
		}
		return nil, err
	}

	fields := map[string]any{}
	if patch.Summary != nil {
		fields["summary"] = *patch.Summary
	}
	if patch.TechnicalAssessment != nil {
		fields["technical_assessment"] = *patch.TechnicalAssessment
	}
	if patch.SoftSkillsAssessment != nil {
		fields["soft_skills_assessment"] = *patch.SoftSkillsAssessment
	}
	if patch.Strengths != nil {
		fields["strengths"] = model.StrengthList(patch.Strengths)
	}
	if patch.Concerns != nil {
		fields["concerns"] = model.StringList(patch.Concerns)
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("inga fält att uppdatera")
	}

	assessment, err := uc.assessments.UpdateEditable(id, fields)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "update assessment", Err: err}
	}
	return assessment, nil
}
