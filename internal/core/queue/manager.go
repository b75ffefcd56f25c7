package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"recipe-manager/internal/core/recipe"
	"recipe-manager/internal/infrastructure/config"
	"recipe-manager/internal/pkg/common"

	"go.uber.org/zap"
)

// Job 批次匯入的單一工作
type Job struct {
	Context context.Context
	Input   *recipe.ImportInput
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Recipe *common.Recipe
	Error  error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager 批次匯入隊列管理器
type Manager struct {
	config    *config.Config
	queue     chan *Job
	done      chan struct{}
	processed int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewManager 創建新的隊列管理器
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config: cfg,
		queue:  make(chan *Job, cfg.Queue.MaxSize),
		done:   make(chan struct{}),
	}
}

// Start 啟動匯入工作者
func (m *Manager) Start(svc *recipe.ImportService) {
	for i := 0; i < m.config.Queue.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i, svc)
	}
	common.LogInfo("批次匯入工作者已啟動",
		zap.Int("workers", m.config.Queue.Workers),
		zap.Int("max_queue_size", m.config.Queue.MaxSize),
	)
}

// worker 逐一取出工作並執行匯入
func (m *Manager) worker(id int, svc *recipe.ImportService) {
	defer m.wg.Done()
	for {
		select {
		case job, ok := <-m.queue:
			if !ok {
				return
			}
			result, err := svc.Import(job.Context, job.Input)
			m.IncrementProcessed()
			job.Result <- Result{Recipe: result, Error: err}
		case <-m.done:
			return
		}
	}
}

// Enqueue 將匯入工作加入隊列
func (m *Manager) Enqueue(ctx context.Context, in *recipe.ImportInput) (chan Result, error) {
	// 檢查隊列容量
	if len(m.queue) >= m.config.Queue.MaxSize {
		return nil, common.ErrQueueFull
	}

	job := Job{
		Context: ctx,
		Input:   in,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- &job:
		common.LogInfo("Import job enqueued",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.config.Queue.MaxSize),
		)
		return job.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, common.ErrServiceUnavailable
	}
}

// GetQueueStatus 獲取隊列狀態
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.config.Queue.MaxSize,
		Workers:        m.config.Queue.Workers,
	}
}

// IncrementProcessed 增加處理計數
func (m *Manager) IncrementProcessed() {
	atomic.AddInt64(&m.processed, 1)
}

// Close 關閉隊列管理器並等待工作者結束
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
		close(m.queue)
	})
}
