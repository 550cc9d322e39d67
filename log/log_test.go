package log

import (
	"bytes"
	"testing"

	"github.com/cinefind/cinefind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSink(t *testing.T) {
	Convey("Given a captured log output", t, func() {
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)

		var buf bytes.Buffer
		SetOutput(&buf)
		Reset(Disable)

		Convey("Errors are written", func() {
			Errorf("Error fetching movies: %s", "boom")
			So(buf.String(), ShouldContainSubstring, "Error fetching movies: boom")
			So(buf.String(), ShouldContainSubstring, "level=error")
		})

		Convey("Structured fields are kept", func() {
			WithFields(Fields{"query": "batman"}).Info("search settled")
			So(buf.String(), ShouldContainSubstring, "query=batman")
		})

		Convey("Nothing is written once disabled", func() {
			Disable()
			Error("hidden")
			WithFields(Fields{"a": 1}).Error("hidden too")
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("Levels below the configured one are dropped", func() {
			viper.Set(key.LogsLevel, "warn")
			SetOutput(&buf)
			Info("quiet")
			So(buf.String(), ShouldBeEmpty)
		})
	})
}
