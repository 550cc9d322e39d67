// Package version checks for newer releases of the application.
package version

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/network"
	"github.com/cinefind/cinefind/util"
	"github.com/cinefind/cinefind/where"
	json "github.com/goccy/go-json"
)

var versionCacher = filesystem.NewCache[string](filepath.Join(where.Cache(), "version.json"), time.Hour*24*2)

// Latest returns the newest released version, cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.Client.Get(constant.ReleasesAPI + "/latest")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup failed: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
