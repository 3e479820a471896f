package elastic_search

import "go.uber.org/zap"

// ElasticLogger adapts zap to the elastic client's trace logger.
type ElasticLogger struct{}

func (l ElasticLogger) Printf(format string, v ...interface{}) {
	zap.S().Debugf(format, v...)
}
