// Package summarize condenses Latvian legal annotations into a short essence
// text. A generative backend handles complex documents when configured; a
// deterministic pattern extractor covers everything else, and every
// generative failure, so callers never see which path ran.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/deusflow/dailydash/internal/metrics"
	"github.com/deusflow/dailydash/internal/ratelimit"
)

// Options makes the previously implicit knobs explicit configuration.
type Options struct {
	EnableGenerative   bool
	MinGenerativeLen   int
	MaxAnnotationChars int
	MaxLegalActChars   int
}

func DefaultOptions() Options {
	return Options{
		MinGenerativeLen:   200,
		MaxAnnotationChars: 2000,
		MaxLegalActChars:   1500,
	}
}

type Summarizer struct {
	opts    Options
	client  *genai.Client
	limiter *ratelimit.GenerativeLimiter
}

// New builds a summarizer. An empty apiKey (or disabled generative option)
// is a normal configuration: fallback-only mode, not an error.
func New(ctx context.Context, apiKey string, opts Options, limiter *ratelimit.GenerativeLimiter) (*Summarizer, error) {
	s := &Summarizer{opts: opts, limiter: limiter}
	if !opts.EnableGenerative || apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *Summarizer) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Summarize extracts the essence of an annotation, optionally informed by
// the draft legal act text. The output type and contract are identical for
// both paths.
func (s *Summarizer) Summarize(ctx context.Context, annotation, legalAct string) string {
	if s.shouldTryGenerative(annotation) && s.limiter.Allow() {
		essence, err := s.generativeExtract(ctx, annotation, legalAct)
		if err == nil {
			metrics.Global.IncrementGenerativeSummaries()
			return essence
		}
		slog.Warn("generative extraction failed, falling back to patterns", "err", err)
	}
	metrics.Global.IncrementFallbackSummaries()
	return fallbackExtract(annotation)
}

// shouldTryGenerative gates the generative path: it needs a configured
// backend and enough text to make extraction reliable.
func (s *Summarizer) shouldTryGenerative(annotation string) bool {
	return s.client != nil && utf8.RuneCountInString(annotation) > s.opts.MinGenerativeLen
}

func (s *Summarizer) generativeExtract(ctx context.Context, annotation, legalAct string) (string, error) {
	model := s.client.GenerativeModel("gemini-1.5-flash")

	annotation = truncateRunes(annotation, s.opts.MaxAnnotationChars)

	legalActSection := ""
	if legalAct != "" {
		legalActSection = fmt.Sprintf("\n\nLegal act draft (the actual regulatory changes):\n%s",
			truncateRunes(legalAct, s.opts.MaxLegalActChars))
	}

	prompt := fmt.Sprintf(`Analyze this Latvian legal document and extract exactly 3 sections:

1. Pamatojums: (justification - 1 concise sentence)
2. Mērķis: (purpose - 1 concise sentence)
3. Risinājums: (the specific regulatory measure - 3-5 sentences describing the SUBSTANCE of the change. What exactly is being amended, added or removed? What specific rule or requirement is introduced? Use the legal act draft text to identify the concrete change.)

Avoid long legal references. Instead of "Ministru kabineta 2014. gada 8. jūlija noteikumos Nr. 392 ..." write "MK noteikumi Nr. 392".
Keep it concise and clear. Output in Latvian.

Annotation:
%s%s`, annotation, legalActSection)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// Section boundary patterns for the fallback extractor. Each stops at the
// next numbered subsection or the end of text (RE2 has no lookahead, so the
// boundary is consumed instead of asserted).
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)1\.1\.\s*Pamatojums.*?Apraksts\s*(.*?)(?:1\.\d|$)`),
	regexp.MustCompile(`(?s)1\.2\.\s*Mērķis.*?Mērķa apraksts\s*(.*?)(?:Spēkā|1\.\d|$)`),
	regexp.MustCompile(`(?s)Risinājuma apraksts\s*(.*?)(?:Vai ir|1\.\d|$)`),
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// "Ministru kabineta 2014. gada 8. jūlija noteikumos Nr. 392 "Teksts"" ->
	// "MK noteikumos Nr. 392"
	mkReferenceRe = regexp.MustCompile(`Ministru kabineta \d{4}\. gada \d{1,2}\.\s*\p{L}+\s+(noteikum\p{L}*|rīkojum\p{L}*|instrukcij\p{L}*)\s*Nr\.\s*(\S+)\s*(?:"[^"]*"(?:\s*"[^"]*")*\s*)?`)

	// "(turpmāk – X)" -> "(X)"
	hereinafterRe = regexp.MustCompile(`\(turpmāk\s*–\s*([^)]+)\)`)

	// "2023. gada 1. jūnija likums "Teksts"" -> "likums"
	datedActRe = regexp.MustCompile(`\d{4}\. gada \d{1,2}\.\s*\p{L}+\s+(likum\p{L}*|noteikum\p{L}*)\s*(?:"[^"]*"(?:\s*"[^"]*")*\s*)?`)
)

// fallbackExtract scans the annotation for the justification, purpose and
// solution-description blocks. No matches produce an empty string, which is
// a valid result, not a failure.
func fallbackExtract(text string) string {
	var sections []string
	for _, re := range sectionPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		chunk := strings.TrimSpace(whitespaceRe.ReplaceAllString(m[1], " "))
		if chunk != "" {
			sections = append(sections, truncateRunes(chunk, 500))
		}
	}
	essence := strings.Join(sections, " | ")
	essence = mkReferenceRe.ReplaceAllString(essence, "MK ${1} Nr. ${2} ")
	essence = hereinafterRe.ReplaceAllString(essence, "(${1})")
	essence = datedActRe.ReplaceAllString(essence, "${1} ")
	return strings.TrimSpace(essence)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
