package fa

import "strconv"

// Glyph identifies the picture of an icon.
type Glyph int

const (
	GlyphAddressBook Glyph = iota
	GlyphAdjust
	GlyphAnchor
	GlyphAngleDown
	GlyphAngleUp
	GlyphArchive
	GlyphArrowDown
	GlyphArrowLeft
	GlyphArrowRight
	GlyphArrowUp
	GlyphBan
	GlyphBars
	GlyphBell
	GlyphBolt
	GlyphBook
	GlyphBookmark
	GlyphBug
	GlyphCalendar
	GlyphCamera
	GlyphCar
	GlyphChartBar
	GlyphCheck
	GlyphCheckCircle
	GlyphCheckSquare
	GlyphChevronDown
	GlyphChevronLeft
	GlyphChevronRight
	GlyphChevronUp
	GlyphCircle
	GlyphClipboard
	GlyphClock
	GlyphCloud
	GlyphCode
	GlyphCog
	GlyphComment
	GlyphCopy
	GlyphDatabase
	GlyphDownload
	GlyphEdit
	GlyphEnvelope
	GlyphExclamation
	GlyphExclamationTriangle
	GlyphEye
	GlyphEyeSlash
	GlyphFile
	GlyphFilter
	GlyphFlag
	GlyphFolder
	GlyphFolderOpen
	GlyphGithub
	GlyphHeart
	GlyphHome
	GlyphImage
	GlyphInfo
	GlyphInfoCircle
	GlyphKey
	GlyphLink
	GlyphList
	GlyphLock
	GlyphMapMarker
	GlyphMinus
	GlyphMoon
	GlyphPaperPlane
	GlyphPen
	GlyphPhone
	GlyphPlus
	GlyphPowerOff
	GlyphQuestion
	GlyphQuestionCircle
	GlyphRedo
	GlyphSave
	GlyphSearch
	GlyphServer
	GlyphShare
	GlyphShieldAlt
	GlyphSpinner
	GlyphSquare
	GlyphStar
	GlyphSun
	GlyphSync
	GlyphTag
	GlyphTimes
	GlyphTimesCircle
	GlyphTrash
	GlyphTwitter
	GlyphUnlock
	GlyphUpload
	GlyphUser
	GlyphUsers
	GlyphWifi
	GlyphWrench
)

var glyphNames = [...]string{
	GlyphAddressBook:         "address-book",
	GlyphAdjust:              "adjust",
	GlyphAnchor:              "anchor",
	GlyphAngleDown:           "angle-down",
	GlyphAngleUp:             "angle-up",
	GlyphArchive:             "archive",
	GlyphArrowDown:           "arrow-down",
	GlyphArrowLeft:           "arrow-left",
	GlyphArrowRight:          "arrow-right",
	GlyphArrowUp:             "arrow-up",
	GlyphBan:                 "ban",
	GlyphBars:                "bars",
	GlyphBell:                "bell",
	GlyphBolt:                "bolt",
	GlyphBook:                "book",
	GlyphBookmark:            "bookmark",
	GlyphBug:                 "bug",
	GlyphCalendar:            "calendar",
	GlyphCamera:              "camera",
	GlyphCar:                 "car",
	GlyphChartBar:            "chart-bar",
	GlyphCheck:               "check",
	GlyphCheckCircle:         "check-circle",
	GlyphCheckSquare:         "check-square",
	GlyphChevronDown:         "chevron-down",
	GlyphChevronLeft:         "chevron-left",
	GlyphChevronRight:        "chevron-right",
	GlyphChevronUp:           "chevron-up",
	GlyphCircle:              "circle",
	GlyphClipboard:           "clipboard",
	GlyphClock:               "clock",
	GlyphCloud:               "cloud",
	GlyphCode:                "code",
	GlyphCog:                 "cog",
	GlyphComment:             "comment",
	GlyphCopy:                "copy",
	GlyphDatabase:            "database",
	GlyphDownload:            "download",
	GlyphEdit:                "edit",
	GlyphEnvelope:            "envelope",
	GlyphExclamation:         "exclamation",
	GlyphExclamationTriangle: "exclamation-triangle",
	GlyphEye:                 "eye",
	GlyphEyeSlash:            "eye-slash",
	GlyphFile:                "file",
	GlyphFilter:              "filter",
	GlyphFlag:                "flag",
	GlyphFolder:              "folder",
	GlyphFolderOpen:          "folder-open",
	GlyphGithub:              "github",
	GlyphHeart:               "heart",
	GlyphHome:                "home",
	GlyphImage:               "image",
	GlyphInfo:                "info",
	GlyphInfoCircle:          "info-circle",
	GlyphKey:                 "key",
	GlyphLink:                "link",
	GlyphList:                "list",
	GlyphLock:                "lock",
	GlyphMapMarker:           "map-marker",
	GlyphMinus:               "minus",
	GlyphMoon:                "moon",
	GlyphPaperPlane:          "paper-plane",
	GlyphPen:                 "pen",
	GlyphPhone:               "phone",
	GlyphPlus:                "plus",
	GlyphPowerOff:            "power-off",
	GlyphQuestion:            "question",
	GlyphQuestionCircle:      "question-circle",
	GlyphRedo:                "redo",
	GlyphSave:                "save",
	GlyphSearch:              "search",
	GlyphServer:              "server",
	GlyphShare:               "share",
	GlyphShieldAlt:           "shield-alt",
	GlyphSpinner:             "spinner",
	GlyphSquare:              "square",
	GlyphStar:                "star",
	GlyphSun:                 "sun",
	GlyphSync:                "sync",
	GlyphTag:                 "tag",
	GlyphTimes:               "times",
	GlyphTimesCircle:         "times-circle",
	GlyphTrash:               "trash",
	GlyphTwitter:             "twitter",
	GlyphUnlock:              "unlock",
	GlyphUpload:              "upload",
	GlyphUser:                "user",
	GlyphUsers:               "users",
	GlyphWifi:                "wifi",
	GlyphWrench:              "wrench",
}

// String implements the Stringer interface.
func (g Glyph) String() string {
	if name, ok := nameOf(glyphNames[:], g); ok {
		return name
	}
	return "Glyph(" + strconv.Itoa(int(g)) + ")"
}

// IsValid provides a quick way to determine if the typed value is part of the
// allowed enumerated values.
func (g Glyph) IsValid() bool {
	_, ok := nameOf(glyphNames[:], g)
	return ok
}

// Class returns glyph class token, e.g. "fa-check".
func (g Glyph) Class() string {
	return "fa-" + mustName("Glyph", glyphNames[:], g)
}

func (Glyph) prop() {}

// ParseGlyph attempts to convert a string to a Glyph.
func ParseGlyph(name string) (Glyph, error) {
	return valueOf[Glyph]("Glyph", glyphNames[:], name)
}

// GlyphNames returns a list of possible string values of Glyph.
func GlyphNames() []string {
	return namesOf(glyphNames[:])
}
