package verify_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/clicker/internal/verify"
	"github.com/okian/clicker/pkg/logger"
)

func TestSetupLogging(t *testing.T) {
	Convey("Given a log file path", t, func() {
		logFile := filepath.Join(t.TempDir(), "verify.log")

		Convey("When logging is set up and a message is logged", func() {
			err := verify.SetupLogging(logFile)
			So(err, ShouldBeNil)
			Reset(func() { _ = logger.Init() })

			logger.Get().Info(context.Background(), "checking output capture")

			Convey("Then the message lands in the file", func() {
				data, readErr := os.ReadFile(logFile)
				So(readErr, ShouldBeNil)
				So(strings.Contains(string(data), "checking output capture"), ShouldBeTrue)
			})
		})
	})
}
