package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Gold!**\nYou don't have enough coins for this purchase."
	MsgNotInTown         = "🏘️ **Shop Closed**\nThe shop is only open in town. Head back first!"

	// Items & Inventory
	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling?"

	// User
	MsgUserNotFound = "👤 **User Not Found**\nThey haven't chatted or adventured yet."

	// Cooldowns & toggles
	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."
	MsgGameDisabled   = "🔒 **Currently Disabled**\nAn admin has turned this feature off."

	// Quests
	MsgQuestNotCompleted   = "📜 **Quest Incomplete**\nFinish today's quest before claiming the reward."
	MsgQuestAlreadyClaimed = "🎁 **Already Claimed**\nCome back tomorrow for a new quest!"

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorBlue   = 0x3498db
	ColorGreen  = 0x2ecc71
	ColorGold   = 0xf1c40f
	ColorPurple = 0x9b59b6
	ColorRed    = 0xe74c3c
)
