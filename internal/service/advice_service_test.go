package service_test

import (
	"strings"
	"testing"
	"time"

	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/internal/service"
	"github.com/limbo/godsaeng/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTunables = config.AdviceTunables{
	WalkSpeedKmh:  5.0,
	RamenBaseKcal: 530,
	EggKcal:       70,
	CheeseKcal:    70,
	RiceKcal:      210,
	MilkKcal:      100,
	KcalPerKg:     7700,
}

// noon keeps the late-night risk bump out of the picture
var noon = time.Date(2025, 9, 14, 12, 0, 0, 0, time.UTC)

func newTestAdviser() *service.AdviceService {
	return service.NewAdviceServiceWithClock(testTunables, func() time.Time { return noon })
}

func TestAdviseRejectsEmptyQuery(t *testing.T) {
	serv := newTestAdviser()
	_, err := serv.Advise("   ")
	assert.ErrorIs(t, err, errorvalues.ErrEmptyQuery)
}

func TestAdviseRoutesByKeyword(t *testing.T) {
	serv := newTestAdviser()
	tests := []struct {
		text  string
		topic string
	}{
		{"새벽인데 불닭 먹어도 될까?", "food"},
		{"여드름 나면 어떡해", "food"},
		{"10분 거리인데 7분 남았어, 지각할까?", "hurry"},
		{"수능 공부가 너무 막막해", "study"},
		{"썸 타는 사람한테 고백해도 돼?", "love"},
		{"오늘의 운세 알려줘", "fortune"},
		{"그냥 심심해", "unknown"},
	}
	for _, tt := range tests {
		advice, err := serv.Advise(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.topic, advice.Topic, tt.text)
		assert.NotEmpty(t, advice.Reply, tt.text)
	}
}

func TestAdviseFoodOutranksHurry(t *testing.T) {
	serv := newTestAdviser()
	// both keyword sets match; the food route sits higher
	advice, err := serv.Advise("라면 먹다가 지각하게 생겼어")
	require.NoError(t, err)
	assert.Equal(t, "food", advice.Topic)
}

func TestAdviseFoodArithmetic(t *testing.T) {
	serv := newTestAdviser()
	advice, err := serv.Advise("새벽에 불닭에 치즈 추가해서 먹을까")
	require.NoError(t, err)
	// 530 base + 70 cheese
	assert.Contains(t, advice.Reply, "600 kcal")
	// risk 0.35 + 0.1 cheese at noon
	assert.Contains(t, advice.Reply, "slightly high")
}

func TestAdviseHurryArithmetic(t *testing.T) {
	serv := newTestAdviser()
	advice, err := serv.Advise("원래 10분 거리인데 5분 남았어, 지각이야")
	require.NoError(t, err)
	// 5 km/h * 10 min walked in 5 min needs 10 km/h
	assert.Contains(t, advice.Reply, "10.0 km/h")
	assert.Contains(t, advice.Reply, "sprint")
}

func TestAdviseHurryFallsBackWithoutNumbers(t *testing.T) {
	serv := newTestAdviser()
	advice, err := serv.Advise("늦었다 뛰어야 하나")
	require.NoError(t, err)
	// default 10-minute walk with 7 minutes left
	assert.True(t, strings.Contains(advice.Reply, "10-minute walk in 7 minutes"), advice.Reply)
}

func TestAdviseFortuneIsStableWithinADay(t *testing.T) {
	serv := newTestAdviser()
	first, err := serv.Advise("오늘의 운세 봐줘")
	require.NoError(t, err)
	second, err := serv.Advise("운세!")
	require.NoError(t, err)
	assert.Equal(t, first.Reply, second.Reply)
}
