package auth

import (
	"testing"

	"github.com/cinefind/cinefind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Token resolution", t, func() {
		viper.Set(key.CatalogToken, "")
		_ = DeleteToken()
		Reset(func() {
			viper.Set(key.CatalogToken, "")
			_ = DeleteToken()
		})

		Convey("Without any token it reports none", func() {
			token, source := Token()
			So(token, ShouldBeEmpty)
			So(source, ShouldEqual, SourceNone)
		})

		Convey("The keyring is used when config is empty", func() {
			So(SetToken("  from-keyring \n"), ShouldBeNil)
			token, source := Token()
			So(token, ShouldEqual, "from-keyring")
			So(source, ShouldEqual, SourceKeyring)
		})

		Convey("Configuration wins over the keyring", func() {
			So(SetToken("from-keyring"), ShouldBeNil)
			viper.Set(key.CatalogToken, "from-config")
			token, source := Token()
			So(token, ShouldEqual, "from-config")
			So(source, ShouldEqual, SourceConfig)
		})

		Convey("Empty tokens are refused", func() {
			So(SetToken("   "), ShouldNotBeNil)
		})

		Convey("Deleting a missing token is not an error", func() {
			So(DeleteToken(), ShouldBeNil)
		})
	})
}
