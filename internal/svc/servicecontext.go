// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-emailguard/internal/config"
	"github.com/joeblew999/plat-emailguard/internal/model"
	"github.com/joeblew999/plat-emailguard/pkg/checker"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
)

type ServiceContext struct {
	Config  config.Config
	Queue   *queue.Queue
	Engine  *checker.Engine
	Reports model.ReportsModel
	Events  model.ReportEventsModel
}

func NewServiceContext(c config.Config, q *queue.Queue, engine *checker.Engine, reports model.ReportsModel, events model.ReportEventsModel) *ServiceContext {
	return &ServiceContext{
		Config:  c,
		Queue:   q,
		Engine:  engine,
		Reports: reports,
		Events:  events,
	}
}
