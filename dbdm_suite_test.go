package dbdm_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDBDM(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Diffuse Boosted Dark Matter Suite")
}
