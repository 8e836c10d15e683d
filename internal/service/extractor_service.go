package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/talentpulse/backend/internal/config"
	"github.com/tidwall/gjson"
)

// ExtractedProfile is the document the external extractor returns for a CV.
// The extractor itself is an opaque collaborator; this service only
// transports the CV reference and projects the response.
type ExtractedProfile struct {
	FullName        string                `json:"fullName"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	Location        string                `json:"location"`
	LinkedIn        string                `json:"linkedIn"`
	PrimaryCategory string                `json:"primaryCategory"`
	SubCategory     string                `json:"subCategory"`
	WorkExperience  []ExtractedExperience `json:"workExperience"`
	Education       []ExtractedEducation  `json:"education"`
	Skills          []ExtractedSkill      `json:"skills"`
}

type ExtractedExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type ExtractedEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type ExtractedSkill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

type ExtractorServiceInterface interface {
	Extract(ctx context.Context, cvURL string) (*ExtractedProfile, error)
}

type ExtractorService struct {
	client  *resty.Client
	baseURL string
}

func NewExtractorService() *ExtractorService {
	cfg := config.LoadExtractorConfig()
	client := resty.New()
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &ExtractorService{client: client, baseURL: cfg.BaseURL}
}

func (s *ExtractorService) Extract(ctx context.Context, cvURL string) (*ExtractedProfile, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"cv_url": cvURL}).
		Post(s.baseURL + "/extract")
	if err != nil {
		return nil, fmt.Errorf("extractor request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("extractor returned status %d: %s", resp.StatusCode(), resp.String())
	}

	body := resp.String()
	profile := &ExtractedProfile{
		FullName:        gjson.Get(body, "personal_info.full_name").String(),
		Email:           gjson.Get(body, "personal_info.email").String(),
		Phone:           gjson.Get(body, "personal_info.phone").String(),
		Location:        gjson.Get(body, "personal_info.location").String(),
		LinkedIn:        gjson.Get(body, "personal_info.linked_in").String(),
		PrimaryCategory: gjson.Get(body, "primary_category").String(),
		SubCategory:     gjson.Get(body, "sub_category").String(),
	}

	gjson.Get(body, "work_experience").ForEach(func(_, item gjson.Result) bool {
		profile.WorkExperience = append(profile.WorkExperience, ExtractedExperience{
			Title:       item.Get("title").String(),
			Company:     item.Get("company").String(),
			StartDate:   item.Get("start_date").String(),
			EndDate:     item.Get("end_date").String(),
			Description: item.Get("description").String(),
		})
		return true
	})
	gjson.Get(body, "education").ForEach(func(_, item gjson.Result) bool {
		profile.Education = append(profile.Education, ExtractedEducation{
			Degree:      item.Get("degree").String(),
			Institution: item.Get("institution").String(),
			StartDate:   item.Get("start_date").String(),
			EndDate:     item.Get("end_date").String(),
		})
		return true
	})
	gjson.Get(body, "skills").ForEach(func(_, item gjson.Result) bool {
		profile.Skills = append(profile.Skills, ExtractedSkill{
			Name:        item.Get("name").String(),
			Category:    item.Get("category").String(),
			Proficiency: item.Get("proficiency").String(),
		})
		return true
	})

	return profile, nil
}
