package models

import "time"

// HistoryAction tags an entry in the user activity trail.
type HistoryAction string

const (
	ActionLogin             HistoryAction = "login"
	ActionLogout            HistoryAction = "logout"
	ActionViewProduct       HistoryAction = "view_product"
	ActionAddToCart         HistoryAction = "add_to_cart"
	ActionRemoveFromCart    HistoryAction = "remove_from_cart"
	ActionCreateOrder       HistoryAction = "create_order"
	ActionUpdateOrder       HistoryAction = "update_order"
	ActionCancelOrder       HistoryAction = "cancel_order"
	ActionPaymentInitiated  HistoryAction = "payment_initiated"
	ActionPaymentCompleted  HistoryAction = "payment_completed"
	ActionPaymentFailed     HistoryAction = "payment_failed"
	ActionPaymentCancelled  HistoryAction = "payment_cancelled"
	ActionPaymentRefunded   HistoryAction = "payment_refunded"
	ActionPaymentUpdated    HistoryAction = "payment_updated"
	ActionCreateReservation HistoryAction = "create_reservation"
	ActionUpdateReservation HistoryAction = "update_reservation"
	ActionCancelReservation HistoryAction = "cancel_reservation"
	ActionCreateJournal     HistoryAction = "create_journal"
	ActionUpdateJournal     HistoryAction = "update_journal"
	ActionDeleteJournal     HistoryAction = "delete_journal"
	ActionSubmitFeedback    HistoryAction = "submit_feedback"
	ActionGenerateInvoice   HistoryAction = "generate_invoice"
	ActionUpdateInvoice     HistoryAction = "update_invoice"
	ActionAdminAction       HistoryAction = "admin_action"
	ActionViewPage          HistoryAction = "view_page"
)

// UserHistory is an append-only audit row. Entries are never updated; owners
// may delete their own rows or clear the whole trail.
type UserHistory struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	User        User          `json:"-" gorm:"foreignKey:UserID"`
	Action      HistoryAction `json:"action" gorm:"not null"`
	Description string        `json:"description"`
	IPAddress   string        `json:"ip_address"`
	UserAgent   string        `json:"user_agent"`
	Timestamp   time.Time     `json:"timestamp" gorm:"autoCreateTime;index"`
}
