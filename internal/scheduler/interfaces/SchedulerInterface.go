package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	Housekeep() int
}
