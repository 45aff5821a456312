package tray

// iconData is a 16x16 PNG used as the tray template icon.
var iconData = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0xf3, 0xff, 0x61, 0x00, 0x00, 0x00,
	0x2d, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0x80, 0x02, 0xb9,
	0x09, 0xff, 0x1b, 0x48, 0xc1, 0x0c, 0xe8, 0x00, 0x28, 0xf8, 0x9f, 0x14,
	0xcc, 0x80, 0x66, 0xf3, 0x7f, 0x32, 0x71, 0xc3, 0xa8, 0x01, 0xa3, 0x06,
	0x0c, 0x17, 0x03, 0x28, 0xce, 0x4c, 0x94, 0x66, 0x67, 0x00, 0x2c, 0x43,
	0x69, 0x8f, 0x1f, 0x50, 0xdc, 0xdc, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45,
	0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
