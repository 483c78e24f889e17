/*Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/zenith-market/goapi/base/log"
)

// Ender finishes a timer started by BumpTime.
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

const ddRate = 1

var (
	initOnce sync.Once
	client   statsCli
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// noopCli keeps metric calls harmless when no agent host is configured.
type noopCli struct{}

func (noopCli) Count(string, int64, []string, float64) error              { return nil }
func (noopCli) Histogram(string, float64, []string, float64) error        { return nil }
func (noopCli) TimeInMilliseconds(string, float64, []string, float64) error { return nil }

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = noopCli{}
		return
	}
	addr := fmt.Sprintf("%s:8125", host)
	c, err := statsd.NewBuffered(addr, 10)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent")
		client = noopCli{}
		return
	}
	client = c
}

// New creates a metric client with package name as prefix.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	tags    []string
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := client.Count(mt.pkgName+"."+key, int64(val), append(mt.tags, parseTags(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum fail")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := client.Histogram(mt.pkgName+"."+key, val, append(mt.tags, parseTags(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram fail")
	}
}

// BumpTime starts a timer; End() on the returned value records it. Usual
// pattern:
//
//	defer met.BumpTime("request.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + "." + key,
		tags:  append(mt.tags, parseTags(tags)...),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	elapsed := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := client.TimeInMilliseconds(t.key, elapsed, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("BumpTime fail")
	}
}

// parseTags converts key/value pairs into datadog's "k:v" form. Length must
// be a multiple of 2.
func parseTags(kvs []string) []string {
	if kvs == nil {
		return nil
	}
	if len(kvs)%2 != 0 {
		log.Log().WithField("tags", kvs).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		arr = append(arr, strings.Join(kvs[i:i+2], ":"))
	}
	return arr
}
