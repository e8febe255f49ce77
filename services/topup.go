package services

import (
	"errors"
	"fmt"

	"arenapay/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TopupRequestInput struct {
	UserUID       string
	Amount        decimal.Decimal
	Method        string
	SenderNumber  string
	TransactionID string
}

// SubmitTopupRequest records a manual deposit claim for admin review.
// Nothing is credited here.
func SubmitTopupRequest(db *gorm.DB, minAmount decimal.Decimal, in TopupRequestInput) (*models.TopupRequest, error) {
	if in.Amount.LessThan(minAmount) {
		return nil, &ValidationError{Message: fmt.Sprintf("Amount must be at least %s", minAmount.String())}
	}
	if in.TransactionID == "" || in.SenderNumber == "" {
		return nil, &ValidationError{Message: "Sender number and transaction id are required"}
	}

	var method models.TopupMethod
	if err := db.Where("name = ? AND status = ?", in.Method, models.TopupMethodActive).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Message: "Unknown or inactive top-up method"}
		}
		return nil, err
	}

	request := models.TopupRequest{
		UserUID:       in.UserUID,
		Amount:        in.Amount,
		Method:        in.Method,
		SenderNumber:  in.SenderNumber,
		TransactionID: in.TransactionID,
		Status:        models.TopupRequestPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ProcessTopupRequest approves or rejects a pending manual top-up. An
// approval credits the wallet inside one transaction using the same
// conditional-update guard as the gateway path, so a double-click on the
// admin side cannot credit twice.
func ProcessTopupRequest(db *gorm.DB, requestID uint, approve bool) (*models.TopupRequest, error) {
	var request models.TopupRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Top-up request not found"}
			}
			return err
		}

		newStatus := models.TopupRequestRejected
		if approve {
			newStatus = models.TopupRequestApproved
		}

		res := tx.Model(&models.TopupRequest{}).
			Where("id = ? AND status = ?", requestID, models.TopupRequestPending).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &AlreadyProcessedError{Status: request.Status}
		}
		request.Status = newStatus

		if !approve {
			return nil
		}

		var user models.User
		if err := tx.Where("uid = ?", request.UserUID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "User not found"}
			}
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("uid = ?", request.UserUID).
			Update("balance", gorm.Expr("balance + ?", request.Amount)).Error; err != nil {
			return err
		}

		ledger := models.WalletTransaction{
			UserUID:              request.UserUID,
			Amount:               request.Amount,
			TrxType:              models.TrxDeposit,
			Description:          "Top-up via " + request.Method,
			Status:               models.OrderCompleted,
			GatewayTransactionID: request.TransactionID,
		}
		return tx.Create(&ledger).Error
	})
	if err != nil {
		return nil, err
	}

	notification := models.Notification{
		UserUID:     request.UserUID,
		Title:       fmt.Sprintf("Top-up Request %s", request.Status),
		Description: fmt.Sprintf("Your top-up request of %s TK has been %s.", request.Amount.String(), request.Status),
		Link:        "/wallet",
	}
	if err := db.Create(&notification).Error; err != nil {
		return &request, err
	}

	return &request, nil
}
