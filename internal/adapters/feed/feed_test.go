package feed

import (
	"os"
	"testing"

	"github.com/selivandex/sentiment-compass/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
