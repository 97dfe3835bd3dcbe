package assistant

import (
	"context"
	"sync"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// gatewayMock is a mock implementation of gateway.
type gatewayMock struct {
	AskRegulatoryQuestionFunc  func(ctx context.Context, prompt string, history []domain.ChatTurn, grounded bool) (domain.GroundedAnswer, error)
	GetStrategicAnalysisFunc   func(ctx context.Context, prompt string) (string, error)
	ExtractFinancialSeriesFunc func(ctx context.Context, text string) (domain.FinancialSeries, error)

	calls struct {
		AskRegulatoryQuestion []struct {
			Prompt   string
			History  []domain.ChatTurn
			Grounded bool
		}
		GetStrategicAnalysis   []struct{ Prompt string }
		ExtractFinancialSeries []struct{ Text string }
	}
	lock sync.RWMutex
}

func (mock *gatewayMock) AskRegulatoryQuestion(ctx context.Context, prompt string, history []domain.ChatTurn, grounded bool) (domain.GroundedAnswer, error) {
	if mock.AskRegulatoryQuestionFunc == nil {
		panic("gatewayMock.AskRegulatoryQuestionFunc: method is nil but gateway.AskRegulatoryQuestion was just called")
	}
	mock.lock.Lock()
	mock.calls.AskRegulatoryQuestion = append(mock.calls.AskRegulatoryQuestion, struct {
		Prompt   string
		History  []domain.ChatTurn
		Grounded bool
	}{Prompt: prompt, History: history, Grounded: grounded})
	mock.lock.Unlock()
	return mock.AskRegulatoryQuestionFunc(ctx, prompt, history, grounded)
}

func (mock *gatewayMock) AskRegulatoryQuestionCalls() []struct {
	Prompt   string
	History  []domain.ChatTurn
	Grounded bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AskRegulatoryQuestion
}

func (mock *gatewayMock) GetStrategicAnalysis(ctx context.Context, prompt string) (string, error) {
	if mock.GetStrategicAnalysisFunc == nil {
		panic("gatewayMock.GetStrategicAnalysisFunc: method is nil but gateway.GetStrategicAnalysis was just called")
	}
	mock.lock.Lock()
	mock.calls.GetStrategicAnalysis = append(mock.calls.GetStrategicAnalysis, struct{ Prompt string }{prompt})
	mock.lock.Unlock()
	return mock.GetStrategicAnalysisFunc(ctx, prompt)
}

func (mock *gatewayMock) ExtractFinancialSeries(ctx context.Context, text string) (domain.FinancialSeries, error) {
	if mock.ExtractFinancialSeriesFunc == nil {
		panic("gatewayMock.ExtractFinancialSeriesFunc: method is nil but gateway.ExtractFinancialSeries was just called")
	}
	mock.lock.Lock()
	mock.calls.ExtractFinancialSeries = append(mock.calls.ExtractFinancialSeries, struct{ Text string }{text})
	mock.lock.Unlock()
	return mock.ExtractFinancialSeriesFunc(ctx, text)
}

func (mock *gatewayMock) ExtractFinancialSeriesCalls() []struct{ Text string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ExtractFinancialSeries
}
