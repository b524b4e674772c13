// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub keeps the live wishlist sessions for the server.

Each session is an independent aggregate; the hub only maps share slugs to
sessions and forwards accepted mutations to an optional Recorder (the
database store). A Recorder failure is logged and the request still
succeeds, since nothing in the wishlist promises durability.
*/
package hub
