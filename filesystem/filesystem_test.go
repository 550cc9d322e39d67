package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteFileAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("The file is created with its parents and no temp file remains", func() {
			So(WriteFileAtomic("/out/nested/result.json", []byte(`{"ok":true}`), 0o644), ShouldBeNil)

			data, err := API().ReadFile("/out/nested/result.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"ok":true}`)

			exists, _ := API().Exists("/out/nested/result.json.tmp")
			So(exists, ShouldBeFalse)
		})

		Convey("An existing file is replaced", func() {
			So(WriteFileAtomic("/out/a.txt", []byte("one"), 0o644), ShouldBeNil)
			So(WriteFileAtomic("/out/a.txt", []byte("two"), 0o644), ShouldBeNil)

			data, _ := API().ReadFile("/out/a.txt")
			So(string(data), ShouldEqual, "two")
		})
	})
}

func TestNewCache(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		path := "/cache/" + t.Name() + ".json"

		Convey("A stored value is written to the backend and read by a new cache", func() {
			So(NewCache[[]string](path, 0).Set([]string{"heat", "dune"}), ShouldBeNil)

			exists, err := API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			value, expired, err := NewCache[[]string](path, 0).Get()
			So(err, ShouldBeNil)
			So(expired, ShouldBeFalse)
			So(value, ShouldResemble, []string{"heat", "dune"})
		})
	})
}
