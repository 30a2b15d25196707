package mage

// Colour is a 32-bit cell colour. The low 8 bits are red, the next 8 green,
// the next 8 blue and the top 8 alpha. The engine ignores alpha but keeps it
// set so colours render fully opaque by default.
type Colour uint32

// The classic 16-colour text-mode palette.
const (
	Black        Colour = 0xff000000
	Blue         Colour = 0xff800000
	Green        Colour = 0xff008000
	Cyan         Colour = 0xff808000
	Red          Colour = 0xff000080
	Magenta      Colour = 0xff800080
	Brown        Colour = 0xff008080
	LightGray    Colour = 0xff808080
	DarkGray     Colour = 0xff404040
	LightBlue    Colour = 0xffff0000
	LightGreen   Colour = 0xff00ff00
	LightCyan    Colour = 0xffffff00
	LightRed     Colour = 0xff0000ff
	LightMagenta Colour = 0xffff00ff
	Yellow       Colour = 0xff00ffff
	White        Colour = 0xffffffff
)

// RGB builds an opaque Colour from red, green and blue components.
func RGB(r, g, b uint8) Colour {
	return 0xff000000 | Colour(b)<<16 | Colour(g)<<8 | Colour(r)
}
