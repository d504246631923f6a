package aihandler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"job-tracker-backend/config"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	coverletterstore "job-tracker-backend/lib/cover-letter/store"
	"job-tracker-backend/models"
	aiapimodels "job-tracker-backend/models/api/ai"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	ParseJob(ctx context.Context, req aiapimodels.ParseJobRequest) (aiapimodels.ParsedJob, error)
	GenerateCover(ctx context.Context, req aiapimodels.GenerateCoverRequest) (aiapimodels.GenerateCoverResponse, error)
	MatchScore(ctx context.Context, applicationID string) (aiapimodels.MatchScoreResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		coverLetterStore: coverletterstore.NewInstance(db.DB),
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	coverLetterStore coverletterstore.Provider
}

const (
	parseJobPromt = `Ты извлекаешь структурированные данные из текста вакансии.
Верни только валидный JSON без markdown-обёртки, формат:
{
  "company_name":"...",
  "job_title":"...",
  "location_city":"...",
  "location_country":"...",
  "work_mode":"remote|hybrid|on-site или пустая строка",
  "salary_min":null,
  "salary_max":null,
  "salary_currency":"...",
  "compensation_type":"annual|hourly|contract или пустая строка",
  "description":"краткое описание обязанностей и требований без html"
}
Отсутствующие данные оставляй null или пустой строкой, не выдумывай.
Текст вакансии:
%s`

	coverPromt = `Ты помогаешь кандидату написать сопроводительное письмо.
Компания: %s
Позиция: %s
Описание вакансии: %s
Заметки кандидата: %s
Тон: %s
Дополнительные пожелания: %s
Верни только текст письма без приветствий от себя и без пояснений.`

	matchScorePromt = `Оцени соответствие кандидата вакансии по его заметкам и описанию вакансии.
Верни только валидный JSON без markdown-обёртки, формат:
{"score":3,"reasoning":"..."}
score - целое от 1 до 5.
Описание вакансии: %s
Заметки кандидата: %s`
)

func (i impl) ParseJob(ctx context.Context, req aiapimodels.ParseJobRequest) (resp aiapimodels.ParsedJob, err error) {
	if err := req.Validate(); err != nil {
		return resp, err
	}
	text := req.Text
	if len(text) > 20000 {
		text = text[:20000]
	}
	answer, err := i.generate(ctx, fmt.Sprintf(parseJobPromt, text))
	if err != nil {
		log.WithError(err).Error("ошибка разбора вакансии через LLM")
		return resp, errors.New("ошибка разбора вакансии")
	}
	if err := json.Unmarshal([]byte(stripFence(answer)), &resp); err != nil {
		log.WithField("answer", answer).WithError(err).Error("ответ LLM не является валидным JSON")
		return resp, errors.New("не удалось разобрать ответ генератора")
	}
	return resp, nil
}

// GenerateCover генерирует письмо и сразу сохраняет его черновиком у заявки.
func (i impl) GenerateCover(ctx context.Context, req aiapimodels.GenerateCoverRequest) (resp aiapimodels.GenerateCoverResponse, err error) {
	if err := req.Validate(); err != nil {
		return resp, err
	}
	rec, err := i.applicationStore.GetByID(req.ApplicationID)
	if err != nil {
		return resp, err
	}
	if rec == nil {
		return resp, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	tone := req.Tone
	if tone == "" {
		tone = "нейтральный"
	}
	promt := fmt.Sprintf(coverPromt,
		rec.CompanyName, rec.JobTitle, rec.JobDescriptionRaw, rec.CoverLetterNotes, tone, req.Extra)
	answer, err := i.generate(ctx, promt)
	if err != nil {
		log.WithField("application_id", req.ApplicationID).WithError(err).Error("ошибка генерации письма через LLM")
		return resp, errors.New("ошибка генерации сопроводительного письма")
	}
	_, err = i.coverLetterStore.Create(dbmodels.CoverLetter{
		ApplicationID: rec.ID,
		Title:         fmt.Sprintf("%s - %s", rec.CompanyName, rec.JobTitle),
		Body:          answer,
		Generated:     true,
	})
	if err != nil {
		log.WithField("application_id", req.ApplicationID).WithError(err).Error("ошибка сохранения сгенерированного письма")
	}
	resp.Body = answer
	return resp, nil
}

func (i impl) MatchScore(ctx context.Context, applicationID string) (resp aiapimodels.MatchScoreResponse, err error) {
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return resp, err
	}
	if rec == nil {
		return resp, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	if rec.JobDescriptionRaw == "" {
		return resp, errors.Wrap(models.ErrValidation, "у заявки нет описания вакансии для оценки")
	}
	answer, err := i.generate(ctx, fmt.Sprintf(matchScorePromt, rec.JobDescriptionRaw, rec.Notes))
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка оценки соответствия через LLM")
		return resp, errors.New("ошибка оценки соответствия")
	}
	if err := json.Unmarshal([]byte(stripFence(answer)), &resp); err != nil {
		log.WithField("answer", answer).WithError(err).Error("ответ LLM не является валидным JSON")
		return resp, errors.New("не удалось разобрать ответ генератора")
	}
	if resp.Score < 1 {
		resp.Score = 1
	}
	if resp.Score > 5 {
		resp.Score = 5
	}
	err = i.applicationStore.Update(applicationID, map[string]interface{}{"match_score": resp.Score})
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка сохранения оценки соответствия")
	}
	return resp, nil
}

func (i impl) generate(ctx context.Context, promt string) (string, error) {
	if config.Conf.AI.AnthropicAPIKey == "" {
		return "", errors.New("не задан ключ API генератора")
	}
	llm, err := anthropic.New(
		anthropic.WithToken(config.Conf.AI.AnthropicAPIKey),
		anthropic.WithModel(config.Conf.AI.Model),
	)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Conf.AI.TimeoutSec)*time.Second)
	defer cancel()
	answer, err := llms.GenerateFromSinglePrompt(ctx, llm, promt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// stripFence убирает markdown-обёртку, если модель всё же её добавила.
func stripFence(answer string) string {
	answer = strings.TrimSpace(answer)
	if strings.HasPrefix(answer, "```") {
		answer = strings.TrimPrefix(answer, "```json")
		answer = strings.TrimPrefix(answer, "```")
		answer = strings.TrimSuffix(answer, "```")
	}
	return strings.TrimSpace(answer)
}
