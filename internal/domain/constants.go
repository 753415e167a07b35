package domain

// SharedMemberName is the pseudo-member that owns a group's shared bank.
// It can never be added, renamed, deleted, updated, or used as a requester.
const SharedMemberName = "@SHARED"

// MaxGroupMembers is the number of real members a group may hold.
// The shared pseudo-member does not count toward it.
const MaxGroupMembers = 5

// Member sub-document field names, as they appear in payloads and errors.
const (
	FieldStats         = "stats"
	FieldCoordinates   = "coordinates"
	FieldSkills        = "skills"
	FieldQuests        = "quests"
	FieldInventory     = "inventory"
	FieldEquipment     = "equipment"
	FieldBank          = "bank"
	FieldSharedBank    = "shared_bank"
	FieldRunePouch     = "rune_pouch"
	FieldSeedVault     = "seed_vault"
	FieldDeposited     = "deposited"
	FieldDiaryVars     = "diary_vars"
	FieldCollectionLog = "collection_log"
)

// Item request embed content
const (
	ItemRequestTitle        = "Item Request"
	ItemRequestColor        = 0xFF7900
	ItemImageURLTemplate    = "https://secure.runescape.com/m=itemdb_oldschool/obj_sprite.gif?id=%d"
	ItemRequestNoHolders    = "No one has this item"
	ItemRequestFieldRequest = "Requester"
	ItemRequestFieldItem    = "Item"
	ItemRequestFieldHolders = "Current Holders"
	ItemRequestFieldNote    = "Note"
)

// Trusted Discord webhook URL prefixes
var TrustedWebhookPrefixes = []string{
	"https://discord.com/api/webhooks/",
	"https://discordapp.com/api/webhooks/",
}
