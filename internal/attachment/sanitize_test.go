package attachment_test

import (
	"registrar/internal/attachment"
	"registrar/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"proof.pdf", "proof.pdf"},
		{"my student card (2026).png", "my_student_card_2026_.png"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"résumé.pdf", "r_sum_.pdf"},
		{"   ", "file"},
		{"..", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, attachment.SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	name := attachment.SanitizeFilename(strings.Repeat("a", 300) + ".pdf")
	require.Len(t, name, 120)
}

func TestBlobName(t *testing.T) {
	require.Equal(t, "MTERM2026-000042/bankReceipt/v3-receipt.pdf",
		attachment.BlobName("MTERM2026-000042", domain.AttachmentBankReceipt, 3, "receipt.pdf"))
}
