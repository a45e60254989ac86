package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ContactFeeCents is the fixed USD charge for contact-information access.
const ContactFeeCents int64 = 500

type PaymentService struct {
	Dynamo *DynamoService
}

// CreatePaymentIntent asks Stripe for a payment intent over the contact fee
// and returns its client secret.
func (ps *PaymentService) CreatePaymentIntent(ctx context.Context) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ContactFeeCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// RecordPayment stores a completed charge as a pending contact request.
func (ps *PaymentService) RecordPayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	payment.PaymentID = uuid.New().String()
	payment.Amount = ContactFeeCents
	payment.Status = models.PaymentPending
	payment.CreatedAt = time.Now().UTC()

	if err := ps.Dynamo.PutItem(ctx, models.PaymentsTable, payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaymentsByUser lists one user's contact requests, newest first.
func (ps *PaymentService) GetPaymentsByUser(ctx context.Context, userEmail string) ([]models.Payment, error) {
	payments, err := ps.scanPayments(ctx)
	if err != nil {
		return nil, err
	}

	var mine []models.Payment
	for _, p := range payments {
		if p.UserEmail == userEmail {
			mine = append(mine, p)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })
	return mine, nil
}

// GetPendingPayments lists every contact request awaiting admin approval.
func (ps *PaymentService) GetPendingPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := ps.scanPayments(ctx)
	if err != nil {
		return nil, err
	}

	var pending []models.Payment
	for _, p := range payments {
		if p.Status == models.PaymentPending {
			pending = append(pending, p)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })
	return pending, nil
}

// ApprovePayment marks a contact request approved, granting the payer access
// to the requested profile's contact fields.
func (ps *PaymentService) ApprovePayment(ctx context.Context, paymentID string) error {
	key := map[string]types.AttributeValue{
		"paymentId": &types.AttributeValueMemberS{Value: paymentID},
	}
	_, err := ps.Dynamo.UpdateItem(ctx, models.PaymentsTable, key,
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: models.PaymentApproved},
		},
		map[string]string{"#status": "status"},
		"attribute_exists(paymentId)")
	if errors.Is(err, ErrConditionFailed) {
		return ErrNotFound
	}
	return err
}

// HasContactAccess reports whether the user holds an approved payment for
// the given profile.
func (ps *PaymentService) HasContactAccess(ctx context.Context, userEmail string, biodataID int) (bool, error) {
	payments, err := ps.scanPayments(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.UserEmail == userEmail && p.BiodataID == biodataID && p.Status == models.PaymentApproved {
			return true, nil
		}
	}
	return false, nil
}

func (ps *PaymentService) scanPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := ps.Dynamo.ScanInto(ctx, models.PaymentsTable, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
