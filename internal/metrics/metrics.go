package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                  sync.RWMutex
	ScreeningsStarted   int64
	ScreeningsCompleted int64
	QuestionsAsked      int64
	RecordsSaved        int64
	SaveFailures        int64
	LastUpdateTime      time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementScreeningsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScreeningsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementScreeningsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScreeningsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AddQuestionsAsked(count int) {
	if count <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsAsked += int64(count)
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementRecordSave(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.RecordsSaved++
	} else {
		m.SaveFailures++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		ScreeningsStarted:   m.ScreeningsStarted,
		ScreeningsCompleted: m.ScreeningsCompleted,
		QuestionsAsked:      m.QuestionsAsked,
		RecordsSaved:        m.RecordsSaved,
		SaveFailures:        m.SaveFailures,
		LastUpdateTime:      m.LastUpdateTime,
	}
}
