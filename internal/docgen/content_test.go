package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPillarContentArchitecture(t *testing.T) {
	body := buildPillarContent("Architecture", "Transact", []string{
		"The platform runs on Kubernetes with containerized workloads.",
	})

	assert.Contains(t, body, "Transact delivers a comprehensive, cloud-native architecture")
	// Keyword in the answers triggers the extra paragraph.
	assert.Contains(t, body, "enterprise-grade orchestration with Kubernetes")
	assert.NotContains(t, body, "Event-driven architecture supports real-time data processing")
}

func TestBuildPillarContentSecurityAugmentation(t *testing.T) {
	plain := buildPillarContent("Security", "Transact", []string{"General description."})
	augmented := buildPillarContent("Security", "Transact", []string{
		"Supports encryption and MFA for all users.",
	})

	assert.NotContains(t, plain, "biometric authentication")
	assert.Contains(t, augmented, "biometric authentication")
	assert.Contains(t, augmented, "quantum-resistant algorithms")
	assert.Greater(t, len(augmented), len(plain))
}

func TestBuildPillarContentCaseInsensitivePillar(t *testing.T) {
	lower := buildPillarContent("devops", "TAP", nil)
	upper := buildPillarContent("DevOps", "TAP", nil)
	assert.Equal(t, lower, upper)
	assert.Contains(t, lower, "continuous integration and continuous deployment")
}

func TestBuildPillarContentGenericFallback(t *testing.T) {
	body := buildPillarContent("Compliance", "Transact", []string{"whatever"})
	assert.Contains(t, body, "Transact provides comprehensive Compliance capabilities")
}

func TestCleanAnswer(t *testing.T) {
	assert.Equal(t, "No information available.", cleanAnswer(""))
	assert.Equal(t, "No information available.", cleanAnswer("   \n\t "))

	cleaned := cleanAnswer("Spread   over\nseveral\n\nlines")
	assert.Equal(t, "Spread over several lines.", cleaned)

	// Already terminated answers are not double-punctuated.
	assert.Equal(t, "Done!", cleanAnswer("Done!"))

	long := strings.Repeat("x", 2500)
	cleaned = cleanAnswer(long)
	assert.Len(t, cleaned, 2000)
	assert.True(t, strings.HasSuffix(cleaned, "..."))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "N/A", maskToken(""))
	assert.Equal(t, "N/A", maskToken("shorttoken"))
	assert.Equal(t, "N/A", maskToken(strings.Repeat("a", 20)))

	token := "abcdefghij" + strings.Repeat("-", 30) + "0123456789"
	assert.Equal(t, "abcdefghij...0123456789", maskToken(token))
}

func TestFormatProduct(t *testing.T) {
	assert.Equal(t, "Transact", formatProduct("Transact"))
	assert.Equal(t, "Transact, Payments", formatProduct([]string{"Transact", "Payments"}))
	assert.Equal(t, "Transact, Payments", formatProduct([]any{"Transact", "Payments"}))
	assert.Equal(t, "Unknown", formatProduct(nil))
}
