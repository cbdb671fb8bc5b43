package dissolve_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDissolve(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dissolve Suite")
}
