package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"weav-api/core/config"
	"weav-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is what services depend on to schedule background work.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
}

type Client struct {
	client   *asynq.Client
	maxRetry int
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *Client {
	return &Client{
		client:   asynq.NewClient(redisOpt(redisCfg)),
		maxRetry: queueCfg.MaxRetry,
	}
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, body)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(c.maxRetry),
		asynq.TaskID(uuid.NewString()),
	)
	if err != nil {
		logger.Error("Queue:Enqueue", "type", taskType, err)
		return err
	}

	logger.Debug("Queue:Enqueue:OK", "type", taskType, "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Worker runs asynq handlers registered by the modules.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *Worker {
	srv := asynq.NewServer(redisOpt(redisCfg), asynq.Config{
		Concurrency: queueCfg.Concurrency,
		Logger:      logger.Logrus(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:Worker:TaskFailed", "type", task.Type(), err)
		}),
	})
	return &Worker{srv: srv, mux: asynq.NewServeMux()}
}

func (w *Worker) Handle(taskType string, h asynq.Handler) {
	w.mux.Handle(taskType, h)
}

func (w *Worker) Start() error {
	return w.srv.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

// Decode unmarshals a task payload. Malformed payloads are never retried.
func Decode(t *asynq.Task, dest any) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}
