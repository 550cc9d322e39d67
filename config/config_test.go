package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.SearchDebounceMillis), ShouldEqual, 500)
			So(viper.GetString(key.AnalyticsBackend), ShouldEqual, "bolt")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("catalog.base.url")
			So(result, ShouldEqual, "catalog_base_url")
		})

		Convey("Field.Env should carry the application prefix", func() {
			field := Default[key.CatalogToken]
			So(field.Env(), ShouldEqual, "CINEFIND_CATALOG_TOKEN")
		})
	})
}

func TestLoadDotenv(t *testing.T) {
	Convey("Given a dotenv file in the config directory", t, func() {
		const name = "CINEFIND_TEST_DOTENV_VALUE"
		path := filepath.Join(where.Config(), ".env")
		So(filesystem.API().WriteFile(path, []byte(name+"=from-file\n"), 0o600), ShouldBeNil)

		Reset(func() {
			_ = os.Unsetenv(name)
			_ = filesystem.API().Remove(path)
		})

		Convey("Unset variables are filled from it", func() {
			loadDotenv(path)
			So(os.Getenv(name), ShouldEqual, "from-file")
		})

		Convey("Variables already set by the process win", func() {
			So(os.Setenv(name, "from-process"), ShouldBeNil)
			loadDotenv(path)
			So(os.Getenv(name), ShouldEqual, "from-process")
		})

		Convey("Missing files are ignored", func() {
			loadDotenv(filepath.Join(where.Config(), "missing.env"))
			_, set := os.LookupEnv(name)
			So(set, ShouldBeFalse)
		})
	})
}
