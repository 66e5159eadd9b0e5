package constants

// User roles
const (
	RoleDriver  = "DRIVER"
	RoleAdmin   = "ADMIN"
	RoleFinance = "FINANCE"
)

// Truck status
const (
	TruckActive      = "ACTIVE"
	TruckMaintenance = "MAINTENANCE"
	TruckInactive    = "INACTIVE"
)

// Truck history actions
const (
	HistoryCheckIn    = "CHECKIN"
	HistoryCheckOut   = "CHECKOUT"
	HistoryAssigned   = "ASSIGNED"
	HistoryUnassigned = "UNASSIGNED"
)

// Tire status
const (
	TireNew       = "NEW"
	TireGood      = "GOOD"
	TireWorn      = "WORN"
	TireRetreaded = "RETREADED"
	TireReplaced  = "REPLACED"
	TireDiscarded = "DISCARDED"
)

// Tire event types
const (
	TireEventInstall     = "INSTALL"
	TireEventRemove      = "REMOVE"
	TireEventBlowout     = "BLOWOUT"
	TireEventReplaced    = "REPLACED"
	TireEventRetread     = "RETREAD"
	TireEventMaintenance = "MAINTENANCE"
	TireEventWear        = "WEAR"
)

// Tire alert types and severities
const (
	AlertLifeExpectancy = "LIFE_EXPECTANCY"
	AlertRecurrence     = "RECURRENCE"

	SeverityWarning  = "WARNING"
	SeverityCritical = "CRITICAL"
)

// Checklist condition ratings
const (
	ConditionGood    = "GOOD"
	ConditionRegular = "REGULAR"
	ConditionBad     = "BAD"

	CanvasWorn = "WORN"
	CanvasTorn = "TORN"
)

// Occurrence status
const (
	OccurrencePending  = "PENDING"
	OccurrenceInReview = "IN_REVIEW"
	OccurrenceResolved = "RESOLVED"
)
