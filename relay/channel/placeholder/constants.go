package placeholder

// ImageURLs are the stand-in images, served in this order.
var ImageURLs = []string{
	"https://via.placeholder.com/512x512.png?text=AI+Image+1",
	"https://via.placeholder.com/512x512.png?text=AI+Image+2",
	"https://via.placeholder.com/512x512.png?text=AI+Image+3",
	"https://via.placeholder.com/512x512.png?text=AI+Image+4",
}
