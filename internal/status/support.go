package status

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type TicketCategory string

const (
	CategoryBooking TicketCategory = "booking"
	CategoryPayment TicketCategory = "payment"
	CategoryVehicle TicketCategory = "vehicle"
	CategoryAccount TicketCategory = "account"
	CategoryDispute TicketCategory = "dispute"
	CategoryOther   TicketCategory = "other"
)

type UserType string

const (
	UserRenter UserType = "renter"
	UserOwner  UserType = "owner"
	UserAdmin  UserType = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserPending   UserStatus = "pending"
	UserSuspended UserStatus = "suspended"
	UserInactive  UserStatus = "inactive"
)

type keywordRule[T ~string] struct {
	keywords []string
	value    T
}

func matchFirst[T ~string](raw string, rules []keywordRule[T], def T) T {
	s := Normalize(raw)
	if s == "" {
		return def
	}
	for _, r := range rules {
		if containsAny(s, r.keywords) {
			return r.value
		}
	}
	return def
}

var ticketStatusRules = []keywordRule[TicketStatus]{
	{keywords: []string{"ferm", "clos"}, value: TicketClosed},
	{keywords: []string{"resol", "regl"}, value: TicketResolved},
	{keywords: []string{"cours", "progress", "traitement"}, value: TicketInProgress},
}

var ticketPriorityRules = []keywordRule[TicketPriority]{
	{keywords: []string{"urgent", "criti"}, value: PriorityUrgent},
	{keywords: []string{"haut", "high", "elev"}, value: PriorityHigh},
	{keywords: []string{"bas", "low", "faible"}, value: PriorityLow},
}

var ticketCategoryRules = []keywordRule[TicketCategory]{
	{keywords: []string{"litig", "disput"}, value: CategoryDispute},
	{keywords: []string{"paie", "pay", "rembours", "refund"}, value: CategoryPayment},
	{keywords: []string{"reserv", "booking", "locat"}, value: CategoryBooking},
	{keywords: []string{"vehic", "voiture"}, value: CategoryVehicle},
	{keywords: []string{"compte", "account", "profil"}, value: CategoryAccount},
}

var userTypeRules = []keywordRule[UserType]{
	{keywords: []string{"admin"}, value: UserAdmin},
	{keywords: []string{"propri", "owner", "loueur"}, value: UserOwner},
}

var userStatusRules = []keywordRule[UserStatus]{
	{keywords: []string{"suspen", "bloq", "block", "ban"}, value: UserSuspended},
	{keywords: []string{"inact", "desact", "disabl"}, value: UserInactive},
	{keywords: []string{"attente", "pending", "unverified", "a verifier", "non verifie"}, value: UserPending},
}

// ClassifyTicketStatus defaults to open.
func ClassifyTicketStatus(raw string) TicketStatus {
	return matchFirst(raw, ticketStatusRules, TicketOpen)
}

// ClassifyTicketPriority defaults to medium.
func ClassifyTicketPriority(raw string) TicketPriority {
	return matchFirst(raw, ticketPriorityRules, PriorityMedium)
}

func ClassifyTicketCategory(raw string) TicketCategory {
	return matchFirst(raw, ticketCategoryRules, CategoryOther)
}

// ClassifyUserType maps "propriétaire", "owner", "ADMIN"... Anything else,
// including "locataire" and "client", is a renter.
func ClassifyUserType(raw string) UserType {
	return matchFirst(raw, userTypeRules, UserRenter)
}

func ClassifyUserStatus(raw string) UserStatus {
	return matchFirst(raw, userStatusRules, UserActive)
}
