package mealControllers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/apperrors"
)

// RegisterLike records one like by voter on the row of model with the
// given id. The membership check and the increment-plus-append run as a
// single conditional UPDATE, so two concurrent likes from the same voter
// cannot both pass the check: the row is only touched when the voter is
// not already in liked_by, which keeps likes equal to the cardinality of
// the set. Works for both Meal and UpcomingMeal rows.
func RegisterLike(db *gorm.DB, model interface{}, id string, voter string) error {
	voterJSON, err := json.Marshal([]string{voter})
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "Failed to encode voter", err)
	}

	res := db.Model(model).
		Where("id = ? AND NOT (liked_by @> ?::jsonb)", id, string(voterJSON)).
		Updates(map[string]interface{}{
			"likes":    gorm.Expr("likes + 1"),
			"liked_by": gorm.Expr("liked_by || ?::jsonb", string(voterJSON)),
		})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Failed to register like", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Zero rows means either the row does not exist or the voter already
	// liked it; a follow-up count tells the two apart.
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Failed to register like", err)
	}
	if count == 0 {
		return apperrors.New(apperrors.NotFound, "Meal not found")
	}
	return apperrors.New(apperrors.AlreadyVoted, "You have already liked this meal.")
}
