package SyncService

import "context"

type Interface interface {
	Reload(c context.Context) error
	Run(c context.Context)
}
