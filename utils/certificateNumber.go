package utils

import (
	"fmt"
	"landcert/models"

	"gorm.io/gorm"
)

// NextCertificateNumber advances the per-year counter row and formats the
// certificate number. The counter is moved with a single atomic UPDATE; when
// the row for the year does not exist yet, the insert either wins or loses on
// the unique year index, and a loser retries the update. Call inside the same
// transaction that creates the certificate.
func NextCertificateNumber(tx *gorm.DB, year int) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := tx.Model(&models.CertificateSequence{}).
			Where("year = ?", year).
			UpdateColumn("last_number", gorm.Expr("last_number + 1"))
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected == 1 {
			var seq models.CertificateSequence
			if err := tx.Where("year = ?", year).First(&seq).Error; err != nil {
				return "", err
			}
			return formatCertificateNumber(year, seq.LastNumber), nil
		}

		// First certificate of the year
		seq := models.CertificateSequence{Year: year, LastNumber: 1}
		if err := tx.Create(&seq).Error; err == nil {
			return formatCertificateNumber(year, 1), nil
		}
	}
	return "", fmt.Errorf("could not advance certificate sequence for year %d", year)
}

func formatCertificateNumber(year, sequence int) string {
	return fmt.Sprintf("CERT-%d-%05d", year, sequence)
}
