package service

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"time"

	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/pkg/config"
	"github.com/limbo/godsaeng/pkg/entity"
)

// AdviceService is a prioritized-predicate dispatcher over free text:
// routes are tried top-down and the first matching one answers. All
// arithmetic runs off the tunables struct, never off values patched in
// at runtime.
type AdviceService struct {
	tunables config.AdviceTunables
	routes   []adviceRoute
	now      func() time.Time
}

type adviceRoute struct {
	topic  string
	match  func(text string) bool
	handle func(text string) string
}

var minutesPattern = regexp.MustCompile(`(\d+)\s*분`)

var (
	foodKeywords    = []string{"불닭", "라면", "야식", "매운", "새벽"}
	skinKeywords    = []string{"피부", "여드름", "트러블", "뾰루지"}
	hurryKeywords   = []string{"지각", "늦", "남았", "뛰", "출근", "등교"}
	studyKeywords   = []string{"공부", "시험", "성적", "내신", "수능"}
	loveKeywords    = []string{"연애", "썸", "고백", "데이트", "호감"}
	fortuneKeywords = []string{"운세", "점괘", "오늘의 운"}
)

func NewAdviceService(tunables config.AdviceTunables) *AdviceService {
	return NewAdviceServiceWithClock(tunables, time.Now)
}

func NewAdviceServiceWithClock(tunables config.AdviceTunables, now func() time.Time) *AdviceService {
	as := &AdviceService{
		tunables: tunables,
		now:      now,
	}
	as.routes = []adviceRoute{
		{"food", func(t string) bool { return hasAny(t, foodKeywords) || hasAny(t, skinKeywords) }, as.adviseLateNightFood},
		{"hurry", func(t string) bool { return hasAny(t, hurryKeywords) }, as.adviseHurry},
		{"study", func(t string) bool { return hasAny(t, studyKeywords) }, as.adviseStudy},
		{"love", func(t string) bool { return hasAny(t, loveKeywords) }, as.adviseLove},
		{"fortune", func(t string) bool { return hasAny(t, fortuneKeywords) }, as.adviseFortune},
	}
	return as
}

func (as *AdviceService) Advise(text string) (*Advice, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil, errorvalues.ErrEmptyQuery
	}
	for _, route := range as.routes {
		if route.match(text) {
			return &Advice{Topic: route.topic, Reply: route.handle(text)}, nil
		}
	}
	return &Advice{
		Topic: "unknown",
		Reply: "I can't read that worry yet. Tell me a bit more concretely.",
	}, nil
}

func hasAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// extractMinutes pulls the first two "N분" figures out of the text,
// assumed to be the usual travel time and the time left.
func extractMinutes(text string) (normal, left int, ok bool) {
	matches := minutesPattern.FindAllStringSubmatch(text, 2)
	if len(matches) < 2 {
		return 0, 0, false
	}
	fmt.Sscan(matches[0][1], &normal)
	fmt.Sscan(matches[1][1], &left)
	return normal, left, true
}

func (as *AdviceService) adviseLateNightFood(text string) string {
	total := as.tunables.RamenBaseKcal
	if hasAny(text, []string{"계란", "달걀"}) {
		total += as.tunables.EggKcal
	}
	if strings.Contains(text, "치즈") {
		total += as.tunables.CheeseKcal
	}
	if strings.Contains(text, "밥") {
		total += as.tunables.RiceKcal
	}
	gainG := total / as.tunables.KcalPerKg * 1000
	milkGainG := as.tunables.MilkKcal / as.tunables.KcalPerKg * 1000
	risk := 0.35
	if h := as.now().Hour(); h <= 5 {
		risk += 0.3
	}
	if strings.Contains(text, "치즈") {
		risk += 0.1
	}
	return fmt.Sprintf(
		"That late-night bowl is roughly %.0f kcal, about %.0f g on the long-run scale. Skin-trouble risk: %s. A glass of milk instead would cost only ~%.0f g.",
		total, gainG, skinRiskLabel(risk), milkGainG,
	)
}

func skinRiskLabel(risk float64) string {
	switch {
	case risk <= 0.15:
		return "low"
	case risk <= 0.35:
		return "moderate"
	case risk <= 0.55:
		return "slightly high"
	case risk <= 0.75:
		return "high"
	default:
		return "very high"
	}
}

func (as *AdviceService) adviseHurry(text string) string {
	normal, left, ok := extractMinutes(text)
	if !ok || normal <= 0 || left <= 0 {
		normal, left = 10, 7
	}
	distanceKm := as.tunables.WalkSpeedKmh * float64(normal) / 60.0
	requiredKmh := distanceKm / (float64(left) / 60.0)
	paceMinPerKm := 60.0 / requiredKmh
	secPer100m := paceMinPerKm * 60 / 10
	var verdict string
	switch {
	case requiredKmh <= 6.0:
		verdict = "a brisk walk gets you there"
	case requiredKmh <= 9.0:
		verdict = "power-walk with short jogging bursts"
	case requiredKmh <= 12.0:
		verdict = "sprint the first stretch, then hold steady"
	default:
		verdict = "realistically you won't make it — call ahead"
	}
	return fmt.Sprintf(
		"You need %.1f km/h (%.0f s per 100 m) to cover a %d-minute walk in %d minutes: %s.",
		requiredKmh, secPer100m, normal, left, verdict,
	)
}

func (as *AdviceService) adviseStudy(string) string {
	return "Pick exactly one thing and do 45 focused minutes plus a 10-minute break, twice. Tomorrow, re-solve three of today's problems to check they stuck."
}

func (as *AdviceService) adviseLove(string) string {
	return "Make one small, easy-to-answer suggestion — a 30-minute walk midweek. If the response stays flat twice in a row, slow down for your own sake."
}

var fortunes = []string{
	"A good day to start something small.",
	"Tread carefully around people today.",
	"Unexpected luck may find you.",
	"Don't let a small mistake grow into a big one.",
}

// Deterministic per calendar day so the same question gets the same
// fortune until midnight.
func (as *AdviceService) adviseFortune(string) string {
	h := fnv.New32a()
	h.Write([]byte(as.now().Format(entity.DateLayout)))
	return fortunes[h.Sum32()%uint32(len(fortunes))]
}
