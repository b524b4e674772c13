// Command wishlistctl is a terminal client for the song wishlist server.
//
//	wishlistctl --name alice session create "RMC Choir"
//	wishlistctl -s <slug> -n bob suggest "Oceans" "Hillsong" --video dy9nwe9_xzw
//	wishlistctl -s <slug> -n bob vote 2
//	wishlistctl -s <slug> rank
//
// --server, --session and --name fall back to WISHLIST_SERVER,
// WISHLIST_SESSION and WISHLIST_NAME. --json prints raw API responses.
package main
