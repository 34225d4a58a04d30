// Package notifications tells users when an item on their wishlist is offered
// and retracts those notifications when the offer goes away.
//
// Notifier derives the notifications from a set of changed offers. Delivery is
// delegated to a Sender; RecordSender, the default, stores one Notification row
// per target, source and item. The feature also serves the acting user's
// notifications over HTTP.
package notifications
