// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/ascent/internal/domain/recommend"
)

// Intent routing and response limits for the conversational webhook.
const (
	webhookTopN        = 3
	webhookMaxMissing  = 5
	webhookMaxTips     = 2
	defaultWebhookRole = "Backend Developer"
)

// WebhookHandler dispatches conversational intents to the matching engines
// and renders plain-text fulfillment responses. It accepts both agent
// payload shapes plus a bare test format.
type WebhookHandler struct {
	deps Dependencies
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(deps Dependencies) *WebhookHandler {
	return &WebhookHandler{deps: deps}
}

// webhookRequest accepts the ES shape (queryResult), the CX shape
// (intentInfo + sessionInfo) and a direct test shape (intent + parameters).
type webhookRequest struct {
	QueryResult *struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters map[string]any `json:"parameters"`
	} `json:"queryResult"`
	IntentInfo *struct {
		DisplayName string `json:"displayName"`
	} `json:"intentInfo"`
	SessionInfo *struct {
		Parameters map[string]any `json:"parameters"`
	} `json:"sessionInfo"`
	Intent     string         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
}

// intent flattens the three accepted shapes into one name/parameter pair.
func (r webhookRequest) intent() (string, map[string]any) {
	switch {
	case r.QueryResult != nil:
		return strings.ToLower(r.QueryResult.Intent.DisplayName), r.QueryResult.Parameters
	case r.IntentInfo != nil:
		params := map[string]any{}
		if r.SessionInfo != nil {
			params = r.SessionInfo.Parameters
		}
		return strings.ToLower(r.IntentInfo.DisplayName), params
	default:
		return strings.ToLower(r.Intent), r.Parameters
	}
}

type webhookResponse struct {
	FulfillmentResponse fulfillmentResponse `json:"fulfillmentResponse"`
	FulfillmentText     string              `json:"fulfillmentText"`
}

type fulfillmentResponse struct {
	Messages []fulfillmentMessage `json:"messages"`
}

type fulfillmentMessage struct {
	Text fulfillmentText `json:"text"`
}

type fulfillmentText struct {
	Text []string `json:"text"`
}

func fulfillment(text string) webhookResponse {
	return webhookResponse{
		FulfillmentResponse: fulfillmentResponse{
			Messages: []fulfillmentMessage{{Text: fulfillmentText{Text: []string{text}}}},
		},
		FulfillmentText: text,
	}
}

// HandleWebhook handles POST /webhook requests. Failures are reported in
// the fulfillment text with a 200 status, as conversational agents retry
// or surface error statuses poorly.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const op = "api.webhook"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	name, params := req.intent()
	text, err := h.dispatch(r.Context(), name, params)
	if err != nil {
		writeJSON(w, http.StatusOK, fulfillment("Sorry, I ran into a problem: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, fulfillment(text))
}

// dispatch routes an intent name to the matching engine by substring, the
// same loose contract the conversational agent uses.
func (h *WebhookHandler) dispatch(ctx context.Context, intent string, params map[string]any) (string, error) {
	switch {
	case strings.Contains(intent, "recommend") || strings.Contains(intent, "job"):
		return h.recommendReply(ctx, params)
	case strings.Contains(intent, "skill") && strings.Contains(intent, "gap"):
		return h.gapReply(ctx, params)
	case strings.Contains(intent, "resume"):
		return h.resumeReply(ctx, params)
	default:
		return "Hi! I can recommend jobs for your skills, analyze your skill gap for a target role, or score your resume. What would you like to explore?", nil
	}
}

func (h *WebhookHandler) recommendReply(ctx context.Context, params map[string]any) (string, error) {
	skills := paramSkills(params, "skills")
	results, err := h.deps.Recommend(ctx, skills, recommend.Query{TopN: webhookTopN})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "I couldn't find matching jobs. Try adding more skills to your profile.", nil
	}
	var b strings.Builder
	b.WriteString("Here are your top job matches:\n")
	for _, res := range results {
		fmt.Fprintf(&b, "- %s at %s (%s), %.2f%% match\n", res.Title, res.Company, res.Location, res.MatchPercent)
	}
	b.WriteString("Would you like details on any of these?")
	return b.String(), nil
}

func (h *WebhookHandler) gapReply(ctx context.Context, params map[string]any) (string, error) {
	skills := paramSkills(params, "skills")
	role := paramString(params, "role")
	if role == "" {
		role = defaultWebhookRole
	}
	report, err := h.deps.AnalyzeGap(ctx, skills, role, "")
	if err != nil {
		return "", err
	}
	next := make([]string, 0, webhookMaxMissing)
	for _, m := range report.PrioritizedMissing {
		if len(next) == webhookMaxMissing {
			break
		}
		next = append(next, m.Skill)
	}
	if len(next) == 0 {
		return fmt.Sprintf("For %s you are %.2f%% ready. Nothing left to learn, go apply!", report.Role, report.CompletionPercent), nil
	}
	return fmt.Sprintf("For %s you are %.2f%% ready. Skills to learn next: %s. Estimated time: about %d weeks.",
		report.Role, report.CompletionPercent, strings.Join(next, ", "), report.ETAWeeks), nil
}

func (h *WebhookHandler) resumeReply(ctx context.Context, params map[string]any) (string, error) {
	text := paramString(params, "resume_text")
	result, err := h.deps.ScoreResume(ctx, text, paramString(params, "role"))
	if err != nil {
		return "", err
	}
	if len(result.Tips) == 0 {
		return fmt.Sprintf("Resume score: %d/100 (%s). Your resume looks good!", result.Overall, result.Grade), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Resume score: %d/100 (%s). Quick improvements:\n", result.Overall, result.Grade)
	for i, tip := range result.Tips {
		if i == webhookMaxTips {
			break
		}
		fmt.Fprintf(&b, "- %s\n", tip.Text)
	}
	return b.String(), nil
}

// paramString reads a string parameter, tolerating absence.
func paramString(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// paramSkills reads a skill list that may arrive as a JSON array or as a
// single comma-separated string.
func paramSkills(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}
