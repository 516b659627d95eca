package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/r-4-e/SwasthAI/utils"
)

// Scan modes hint at how many items the model should expect in the frame.
const (
	ScanModePlate = "plate"
	ScanModeItem  = "item"
)

// MealItem is one candidate food identified by the vision model, with its
// macro estimate per 100g. Source is filled in by the enhancement pipeline.
type MealItem struct {
	Name            string  `json:"name"`
	EstimatedGrams  float64 `json:"estimated_grams"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	Confidence      float64 `json:"confidence"`
	Source          string  `json:"source,omitempty"` // "verified_db" | "ai_estimate"
}

// VisionService wraps the Gemini generateContent endpoint for meal photos.
type VisionService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewVisionService() *VisionService {
	return &VisionService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		model:   "gemini-2.5-flash-image",
		// Vision calls are the slowest external dependency; bound them so a
		// stalled call cannot hold the request open indefinitely.
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
	Text       string            `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func promptForMode(mode string) string {
	expectation := "The plate may contain several distinct items; list each one separately."
	if mode == ScanModeItem {
		expectation = "The image shows a single food item; return exactly one entry."
	}
	return fmt.Sprintf(`Analyze this image of food. Identify the items present. %s
For each item, estimate the weight in grams and provide nutritional information per 100g (calories, protein, carbs, fat).
Also provide a confidence score (0-1).
Return ONLY a JSON object with this structure:
{
  "items": [
    {
      "name": "Food Name",
      "estimated_grams": 150,
      "calories_per_100g": 120,
      "protein_per_100g": 10,
      "carbs_per_100g": 20,
      "fat_per_100g": 5,
      "confidence": 0.95
    }
  ]
}`, expectation)
}

// AnalyzeImage sends a base64-encoded photo to the vision model and parses
// the constrained JSON reply. Parse failures and empty responses fail the
// whole analysis; there are no partial results.
func (s *VisionService) AnalyzeImage(ctx context.Context, imageBase64, mode string) ([]MealItem, error) {
	if imageBase64 == "" {
		return nil, errors.New("image required")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: "image/jpeg",
					Data:     utils.StripDataURI(imageBase64),
				}},
				{Text: promptForMode(mode)},
			},
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	u := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse vision response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no response from vision model")
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := cleanModelJSON(sb.String())
	if text == "" {
		return nil, errors.New("no response from vision model")
	}

	var out struct {
		Items []MealItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("vision model returned invalid JSON: %w", err)
	}
	return out.Items, nil
}

// cleanModelJSON strips the Markdown code fences models like to wrap JSON in.
func cleanModelJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
