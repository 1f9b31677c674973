package discord

import "time"

const (
	webhookPrefix = "https://discord.com/api/webhooks/"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332
	ColorOrange = 15105570
	ColorGray   = 9807270

	// Discord rejects embeds above these sizes.
	maxEmbedLength    = 6000
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = time.Second
	// maxRetryWait caps a rate-limit wait requested by Discord.
	maxRetryWait = 10 * time.Second
)

const (
	DefaultUsername = "ISP Dashboard"
	userAgent       = "ISP-Dashboard-Bot/1.0"
	reportBugTitle  = "ISP Dashboard API Error Report"
)
